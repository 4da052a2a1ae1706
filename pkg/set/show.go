package set

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/elves/setvar/pkg/quote"
	"github.com/elves/setvar/pkg/vars"
)

// Usage is printed by set -h.
const Usage = `Usage:
  set [options]                      List variables and their values
  set [options] name value...        Assign values to a variable
  set [options] name[index...] value...
                                     Assign values to elements of a variable
  set -e [options] name              Erase a variable
  set -e [options] name[index...]... Erase elements of a variable
  set -q [options] name[index...]... Count targets that don't exist
  set -n [options]                   List variable names
  set -S [name...]                   Show variables in every scope

Options:
  -l, --local       Use the local scope
  -g, --global      Use the global scope
  -U, --universal   Use the universal scope
  -x, --export      Export the variable, or only consider exported ones
  -u, --unexport    Unexport the variable, or only consider unexported ones
  -e, --erase       Erase variables or elements
  -n, --names       List names only
  -q, --query       Test whether variables or elements exist
  -S, --show        Show details of variables
  -L, --long        Don't shorten long values when listing
  -h, --help        Show this help
`

const (
	// Listed values longer than this are shortened.
	maxListedWidth = 64
	// Width of a shortened value, not counting the ellipsis.
	shortenedWidth = 60
	// Arrays with more elements than this are shown with the middle
	// elided, keeping this many elements at both ends.
	maxShownElements = 100
	shownAtEnds      = maxShownElements / 2
)

func (c *call) listNames() {
	for _, name := range c.b.Store.Names(c.policy.Mode.Scope, c.policy.Mode.Export) {
		fmt.Fprintln(c.out, quote.Quote(name))
	}
}

// Lists every variable of the scope with its values.
func (c *call) listValues() {
	scope := c.policy.Mode.Scope
	for _, name := range c.b.Store.Names(scope, c.policy.Mode.Export) {
		v, ok := c.b.Store.Get(name, scope)
		if !ok {
			fmt.Fprintln(c.out, quote.Quote(name))
			continue
		}
		quoted := make([]string, len(v.Values))
		for i, value := range v.Values {
			quoted[i] = quote.Quote(value)
		}
		fmt.Fprintf(c.out, "%s %s\n", quote.Quote(name), c.shorten(strings.Join(quoted, " ")))
	}
}

func (c *call) shorten(s string) string {
	if !c.policy.Shorten || utf8.RuneCountInString(s) <= maxListedWidth {
		return s
	}
	return string([]rune(s)[:shortenedWidth]) + "…"
}

// Shows the named variables, or all variables when no name is given, in each
// scope. Slices are not allowed.
func (c *call) show(args []string) int {
	for _, arg := range args {
		if strings.ContainsRune(arg, '[') {
			return c.fail(errShowSlices)
		}
	}
	if len(args) == 0 {
		args = c.b.Store.Names(vars.DefaultScope, vars.ExportUnspecified)
	}
	for _, name := range args {
		if !vars.ValidName(name) {
			fmt.Fprintf(c.err, "$%s: invalid var name\n", name)
			continue
		}
		for _, scope := range vars.Scopes {
			c.showScope(name, scope)
		}
		fmt.Fprintln(c.out)
	}
	return StatusOK
}

func (c *call) showScope(name string, scope vars.Scope) {
	v, ok := c.b.Store.Get(name, scope)
	if !ok {
		fmt.Fprintf(c.out, "$%s: not set in %s scope\n", name, scope)
		return
	}
	exported := "unexported"
	if v.Exported {
		exported = "exported"
	}
	n := len(v.Values)
	fmt.Fprintf(c.out, "$%s: set in %s scope, %s, with %d elements\n",
		name, scope, exported, n)
	for i, value := range v.Values {
		if n > maxShownElements {
			if i == shownAtEnds {
				fmt.Fprintln(c.out, "...")
			}
			if i >= shownAtEnds && i < n-shownAtEnds {
				continue
			}
		}
		fmt.Fprintf(c.out, "$%s[%d]: length=%d value=|%s|\n",
			name, i+1, utf8.RuneCountInString(value), quote.Escape(value))
	}
}
