// Package tt supports table-driven tests with little boilerplate.
//
// A typical use looks like:
//
//	tt.Test(t, tt.Fn("ParseIndexes", ParseIndexes), tt.Table{
//		tt.Args("foo[1]", "foo", 3).Rets([]int{1}, nil),
//	})
package tt

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/google/go-cmp/cmp"
)

// Table represents a test table.
type Table []*Case

// Case represents a test case. It is created by Args, and offers setters that
// augment and return itself, so that calls can be chained like
// Args(...).Rets(...).
type Case struct {
	args         []any
	retsMatchers [][]any
}

// Args returns a new Case with the given arguments.
func Args(args ...any) *Case {
	return &Case{args: args}
}

// Rets modifies the test case so that it requires the return values to match
// the given values. It returns the receiver. The arguments may implement the
// Matcher interface, in which case its Match method is called with the actual
// return value. Otherwise, cmp.Equal is used to determine matches.
func (c *Case) Rets(matchers ...any) *Case {
	c.retsMatchers = append(c.retsMatchers, matchers)
	return c
}

// FnToTest describes a function to test.
type FnToTest struct {
	name    string
	body    any
	argsFmt string
}

// Fn makes a new FnToTest with the given function name and body.
func Fn(name string, body any) *FnToTest {
	return &FnToTest{name: name, body: body}
}

// ArgsFmt sets the string for formatting arguments in test error messages,
// and returns fn itself.
func (fn *FnToTest) ArgsFmt(s string) *FnToTest {
	fn.argsFmt = s
	return fn
}

// T is the interface for accessing testing.T.
type T interface {
	Helper()
	Errorf(format string, args ...any)
}

// Test tests a function against test cases.
func Test(t T, fn *FnToTest, tests Table) {
	t.Helper()
	for _, test := range tests {
		rets := call(fn.body, test.args)
		for _, retsMatcher := range test.retsMatchers {
			if match(retsMatcher, rets) {
				continue
			}
			var argsString string
			if fn.argsFmt == "" {
				argsString = sprintArgs(test.args...)
			} else {
				argsString = fmt.Sprintf(fn.argsFmt, test.args...)
			}
			t.Errorf("%s(%s) returns (-want +got):\n%s", fn.name, argsString,
				cmp.Diff(retsMatcher, rets, cmp.Comparer(errorsEqual)))
		}
	}
}

// Matcher wraps the Match method.
type Matcher interface {
	// Match reports whether a return value is considered a match. The argument
	// is of type RetValue so that it cannot be implemented accidentally.
	Match(RetValue) bool
}

// RetValue is an empty interface used in the Matcher interface.
type RetValue any

// Any is a Matcher that matches any value.
var Any Matcher = anyMatcher{}

type anyMatcher struct{}

func (anyMatcher) Match(RetValue) bool { return true }

// ErrorWithType returns a Matcher that matches any non-nil error of the same
// type as v.
func ErrorWithType(v error) Matcher { return errorWithType{v} }

type errorWithType struct{ v error }

func (m errorWithType) Match(r RetValue) bool {
	err, ok := r.(error)
	return ok && err != nil && reflect.TypeOf(err) == reflect.TypeOf(m.v)
}

func match(matchers, actual []any) bool {
	for i, matcher := range matchers {
		if !matchOne(matcher, actual[i]) {
			return false
		}
	}
	return true
}

func matchOne(m, a any) bool {
	if m, ok := m.(Matcher); ok {
		return m.Match(a)
	}
	return cmp.Equal(m, a, cmp.Comparer(errorsEqual))
}

// Errors are compared by message, so that tests don't depend on pointer
// identity.
func errorsEqual(a, b error) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Error() == b.Error()
}

func sprintArgs(args ...any) string {
	var sb strings.Builder
	for i, arg := range args {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%#v", arg)
	}
	return sb.String()
}

func call(fn any, args []any) []any {
	fnType := reflect.TypeOf(fn)
	argsReflect := make([]reflect.Value, len(args))
	for i, arg := range args {
		if arg == nil {
			// reflect.ValueOf(nil) is the zero Value; use the zero value of
			// the parameter type instead.
			var paramType reflect.Type
			if fnType.IsVariadic() && i >= fnType.NumIn()-1 {
				paramType = fnType.In(fnType.NumIn() - 1).Elem()
			} else {
				paramType = fnType.In(i)
			}
			argsReflect[i] = reflect.Zero(paramType)
		} else {
			argsReflect[i] = reflect.ValueOf(arg)
		}
	}
	retsReflect := reflect.ValueOf(fn).Call(argsReflect)
	rets := make([]any, len(retsReflect))
	for i, retReflect := range retsReflect {
		rets[i] = retReflect.Interface()
	}
	return rets
}
