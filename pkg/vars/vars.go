// Package vars contains the variable model used by the set builtin: scopes,
// export modifiers, variable values and the Store interface through which
// variables are read and written.
package vars

import "errors"

// Scope is the visibility tier of a variable.
type Scope uint8

const (
	// DefaultScope leaves the choice of the scope to the store. Reads look up
	// local blocks, then globals, then universals.
	DefaultScope Scope = iota
	// Local variables live in the innermost block of the session.
	Local
	// Global variables live as long as the session.
	Global
	// Universal variables are persisted and shared between sessions.
	Universal
)

// Scopes lists the concrete scopes in lookup order.
var Scopes = []Scope{Local, Global, Universal}

func (s Scope) String() string {
	switch s {
	case Local:
		return "local"
	case Global:
		return "global"
	case Universal:
		return "universal"
	default:
		return "default"
	}
}

// Export is the export modifier of an assignment.
type Export uint8

const (
	// ExportUnspecified keeps the export status a variable already has.
	ExportUnspecified Export = iota
	Exported
	Unexported
)

// Mode combines a scope with an export modifier.
type Mode struct {
	Scope  Scope
	Export Export
}

// Var is the value of a variable: an ordered list of elements and whether it
// is exported. A nil or empty Values is a variable with zero elements, which
// is different from a variable with one empty element.
type Var struct {
	Values   []string
	Exported bool
}

// Clone returns a copy of v that does not share the backing array.
func (v Var) Clone() Var {
	return Var{Values: append([]string{}, v.Values...), Exported: v.Exported}
}

// Errors returned by Store implementations.
var (
	ErrNotFound     = errors.New("no such variable")
	ErrReadOnly     = errors.New("variable is read-only")
	ErrWrongScope   = errors.New("variable cannot be set in this scope")
	ErrInvalidValue = errors.New("invalid value for variable")
)

// Store gives access to variables in all scopes.
type Store interface {
	// Get returns the variable visible in the given scope, and whether it
	// exists.
	Get(name string, scope Scope) (Var, bool)
	// Set assigns values to the named variable. It returns nil, ErrReadOnly,
	// ErrWrongScope, ErrInvalidValue, or an error from the underlying table.
	Set(name string, values []string, mode Mode) error
	// Remove removes the named variable from the scope. It returns
	// ErrNotFound if there is no such variable.
	Remove(name string, scope Scope) error
	// Names returns the sorted names of variables visible in the scope,
	// restricted to exported or unexported ones when export is specified.
	Names(scope Scope, export Export) []string
	// Exists reports whether the variable exists in the scope.
	Exists(name string, scope Scope) bool
}
