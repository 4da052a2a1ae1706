// Package set implements the set builtin, which assigns, erases, queries,
// lists and shows variables of a vars.Store.
//
// Arguments have the form name[index ...] value...; see ParseIndexes for the
// syntax of indexes.
package set

import (
	"errors"
	"fmt"
	"io"

	"github.com/elves/setvar/pkg/env"
	"github.com/elves/setvar/pkg/logutil"
	"github.com/elves/setvar/pkg/vars"
)

var logger = logutil.GetLogger("[set] ")

const cmdName = "set"

// Builtin is the set command bound to a store.
type Builtin struct {
	Store vars.Store
	// Whether the session is interactive. Only interactive sessions are
	// warned about universal variables shadowed by globals.
	Interactive bool
	// Variables whose elements must be directories. When nil,
	// env.PathVariables is used.
	PathVariables []string
}

// Streams are the output and error streams of one call.
type Streams struct {
	Out io.Writer
	Err io.Writer
}

// Failure that has already been reported, or that is reported only through
// the exit status.
var errSilent = errors.New("failed")

// Call runs the builtin with the arguments (not including the command name)
// and returns the exit status. Assignments and listings that succeed return
// lastStatus, so that they don't hide the status of the previous command.
func (b *Builtin) Call(streams Streams, args []string, lastStatus int) int {
	c := &call{b: b, out: streams.Out, err: streams.Err}
	policy, rest, err := ParsePolicy(args)
	if err != nil {
		return c.fail(err)
	}
	if policy.Help {
		io.WriteString(c.out, Usage)
		return StatusOK
	}
	c.policy = policy
	logger.Printf("%s %v %q", policy.Op, policy.Mode, rest)

	switch policy.Op {
	case Show:
		return c.show(rest)
	case Query:
		return c.query(rest)
	case ListNames:
		c.listNames()
		return StatusOK
	}

	if len(rest) == 0 {
		if policy.Op == Erase {
			return c.fail(errEraseName)
		}
		c.listValues()
		return lastStatus
	}
	if status := c.modify(rest); status != StatusOK || policy.Op == Erase {
		return status
	}
	return lastStatus
}

// State of one call.
type call struct {
	b      *Builtin
	out    io.Writer
	err    io.Writer
	policy Policy
}

func (c *call) fail(err error) int {
	if !errors.Is(err, errSilent) {
		fmt.Fprintf(c.err, "%s: %s\n", cmdName, err)
	}
	return statusOf(err)
}

// Returns the variable in the scope of the call. When an export modifier was
// given, variables with the other export status are treated as missing.
func (c *call) get(name string) (vars.Var, bool) {
	v, ok := c.b.Store.Get(name, c.policy.Mode.Scope)
	switch {
	case !ok:
		return vars.Var{}, false
	case c.policy.Mode.Export == vars.Exported:
		return v, v.Exported
	case c.policy.Mode.Export == vars.Unexported:
		return v, !v.Exported
	}
	return v, true
}

// Returns how many of the targets don't exist. A target is a name, or a
// slice in which case every index counts.
func (c *call) query(args []string) int {
	missing := 0
	for _, arg := range args {
		name, slice := SplitSlice(arg)
		v, ok := c.get(name)
		if !slice {
			if !ok {
				missing++
			}
			continue
		}
		// A variable hidden by the export filter has no elements.
		n := 0
		if ok {
			n = len(v.Values)
		}
		indexes, err := ParseIndexes(arg, name, n)
		if err != nil {
			return c.fail(err)
		}
		missing += CountMissing(indexes, n)
	}
	return missing
}

// Assigns or erases the variable named by the first argument.
func (c *call) modify(args []string) int {
	name, slice := SplitSlice(args[0])
	if !vars.ValidName(name) {
		return c.fail(UsageError{fmt.Sprintf("Variable name '%s' is not valid", name)})
	}

	var err error
	switch {
	case slice:
		err = c.modifySlice(name, args)
	case c.policy.Op == Erase:
		err = c.erase(name, args[1:])
	default:
		err = c.set(name, args[1:])
	}
	if err != nil {
		return c.fail(err)
	}

	if c.policy.Op == Assign && c.policy.Mode.Scope == vars.Universal &&
		c.b.Interactive && c.b.Store.Exists(name, vars.Global) {
		fmt.Fprintf(c.err,
			"%s: Universal var '%s' created but shadowed by global var of the same name.\n",
			cmdName, name)
	}
	return StatusOK
}

// Handles arguments like foo[1 2] foo[-1] a b c. Index tokens are consumed
// until there are as many values left as indexes parsed; when erasing, all
// arguments are index tokens.
func (c *call) modifySlice(name string, args []string) error {
	erase := c.policy.Op == Erase
	v, ok := c.b.Store.Get(name, c.policy.Mode.Scope)
	if !ok && erase {
		return errSilent
	}
	list := v.Values

	var indexes []int
	i := 0
	for ; i < len(args); i++ {
		more, err := ParseIndexes(args[i], name, len(list))
		if err != nil {
			return err
		}
		indexes = append(indexes, more...)
		if erase {
			continue
		}
		nValues := len(args) - i - 1
		if nValues < len(indexes) {
			return errArgCount
		}
		if nValues == len(indexes) {
			i++
			break
		}
	}

	if erase {
		return c.set(name, EraseValues(list, indexes))
	}
	updated, err := UpdateValues(list, indexes, args[i:])
	if err != nil {
		return err
	}
	return c.set(name, updated)
}

func (c *call) erase(name string, values []string) error {
	if len(values) > 0 {
		return errValuesWithErase
	}
	err := c.b.Store.Remove(name, c.policy.Mode.Scope)
	switch {
	case errors.Is(err, vars.ErrNotFound):
		return errSilent
	case err != nil:
		return &StoreError{name, err}
	}
	return nil
}

// Writes the whole variable, checking the elements first if it is a path
// variable.
func (c *call) set(name string, values []string) error {
	if contains(c.pathVariables(), name) {
		// Compare against the value visible by default, so that shadowing a
		// path variable in a narrower scope doesn't check existing elements.
		existing, _ := c.b.Store.Get(name, vars.DefaultScope)
		if !checkPaths(c.err, cmdName, name, values, existing.Values) {
			return errSilent
		}
	}
	if values == nil {
		values = []string{}
	}
	if err := c.b.Store.Set(name, values, c.policy.Mode); err != nil {
		logger.Printf("store rejected %s: %v", name, err)
		return &StoreError{name, err}
	}
	return nil
}

func (c *call) pathVariables() []string {
	if c.b.PathVariables != nil {
		return c.b.PathVariables
	}
	return env.PathVariables
}
