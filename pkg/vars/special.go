package vars

import "strconv"

// Names of variables with special rules.
const (
	Status  = "status"
	Version = "version"
	Pid     = "pid"
	Umask   = "umask"
)

// DefaultReadOnly lists the variables that cannot be changed with Set.
var DefaultReadOnly = []string{Status, Version, Pid, "PWD", "SHLVL", "_"}

// checkSpecial applies the rules for special variables.
func (e *Env) checkSpecial(name string, values []string, scope Scope) error {
	if e.readOnly[name] {
		return ErrReadOnly
	}
	if name == Umask {
		if scope != DefaultScope && scope != Global {
			return ErrWrongScope
		}
		if !validUmask(values) {
			return ErrInvalidValue
		}
	}
	return nil
}

func validUmask(values []string) bool {
	if len(values) != 1 || values[0] == "" || len(values[0]) > 4 {
		return false
	}
	mask, err := strconv.ParseUint(values[0], 8, 32)
	return err == nil && mask <= 0777
}
