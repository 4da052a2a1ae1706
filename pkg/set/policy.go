package set

import (
	"fmt"

	"github.com/elves/setvar/pkg/getopt"
	"github.com/elves/setvar/pkg/vars"
)

// Op is the operation requested from the builtin.
type Op int

const (
	Assign Op = iota
	Erase
	Query
	ListNames
	Show
)

func (op Op) String() string {
	switch op {
	case Erase:
		return "erase"
	case Query:
		return "query"
	case ListNames:
		return "names"
	case Show:
		return "show"
	default:
		return "assign"
	}
}

// Policy is what the options of one invocation resolve to.
type Policy struct {
	Op   Op
	Mode vars.Mode
	// Whether long values may be shortened when listing.
	Shorten bool
	Help    bool
}

var (
	optLocal     = &getopt.OptionSpec{Short: 'l', Long: "local", Arity: getopt.NoArgument}
	optGlobal    = &getopt.OptionSpec{Short: 'g', Long: "global", Arity: getopt.NoArgument}
	optUniversal = &getopt.OptionSpec{Short: 'U', Long: "universal", Arity: getopt.NoArgument}
	optExport    = &getopt.OptionSpec{Short: 'x', Long: "export", Arity: getopt.NoArgument}
	optUnexport  = &getopt.OptionSpec{Short: 'u', Long: "unexport", Arity: getopt.NoArgument}
	optErase     = &getopt.OptionSpec{Short: 'e', Long: "erase", Arity: getopt.NoArgument}
	optNames     = &getopt.OptionSpec{Short: 'n', Long: "names", Arity: getopt.NoArgument}
	optQuery     = &getopt.OptionSpec{Short: 'q', Long: "query", Arity: getopt.NoArgument}
	optShow      = &getopt.OptionSpec{Short: 'S', Long: "show", Arity: getopt.NoArgument}
	optLong      = &getopt.OptionSpec{Short: 'L', Long: "long", Arity: getopt.NoArgument}
	optHelp      = &getopt.OptionSpec{Short: 'h', Long: "help", Arity: getopt.NoArgument}

	optionSpecs = []*getopt.OptionSpec{
		optLocal, optGlobal, optUniversal, optExport, optUnexport,
		optErase, optNames, optQuery, optShow, optLong, optHelp,
	}
)

// ParsePolicy parses the options at the start of args. Option parsing stops at
// the first argument that is not an option, so that values like "-1" can be
// assigned. It returns the policy and the remaining arguments.
//
// Show takes precedence over all other options except help. Otherwise,
// conflicting options are rejected with a UsageError: more than one scope,
// both export and unexport, or more than one of erase, names and query.
func ParsePolicy(args []string) (Policy, []string, error) {
	opts, rest, err := getopt.Parse(args, optionSpecs, getopt.BSD)
	if err != nil {
		for _, opt := range opts {
			if opt.Unknown {
				return Policy{}, nil, UsageError{fmt.Sprintf("Unknown option '%s'", opt)}
			}
		}
		return Policy{}, nil, UsageError{err.Error()}
	}

	seen := map[*getopt.OptionSpec]bool{}
	for _, opt := range opts {
		seen[opt.Spec] = true
	}
	policy := Policy{Shorten: !seen[optLong], Help: seen[optHelp]}
	if policy.Help {
		return policy, rest, nil
	}
	if seen[optShow] {
		// Show reports every scope, so the other options don't apply.
		policy.Op = Show
		return policy, rest, nil
	}

	if count(seen, optErase, optNames, optQuery) > 1 {
		return Policy{}, nil, errCombo
	}
	switch {
	case seen[optQuery]:
		policy.Op = Query
	case seen[optErase]:
		policy.Op = Erase
	case seen[optNames]:
		policy.Op = ListNames
	}

	if count(seen, optLocal, optGlobal, optUniversal) > 1 {
		return Policy{}, nil, errScope
	}
	switch {
	case seen[optLocal]:
		policy.Mode.Scope = vars.Local
	case seen[optGlobal]:
		policy.Mode.Scope = vars.Global
	case seen[optUniversal]:
		policy.Mode.Scope = vars.Universal
	}

	if seen[optExport] && seen[optUnexport] {
		return Policy{}, nil, errExpUnexp
	}
	switch {
	case seen[optExport]:
		policy.Mode.Export = vars.Exported
	case seen[optUnexport]:
		policy.Mode.Export = vars.Unexported
	}
	return policy, rest, nil
}

func count(seen map[*getopt.OptionSpec]bool, specs ...*getopt.OptionSpec) int {
	n := 0
	for _, spec := range specs {
		if seen[spec] {
			n++
		}
	}
	return n
}
