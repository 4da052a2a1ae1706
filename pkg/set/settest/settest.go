// Package settest provides a framework for testing the set builtin.
//
// The entry point for the framework is the Test function, which accepts a
// *testing.T and any number of test cases.
//
// Test cases are constructed using the That function, followed by method calls
// that add additional information to it.
//
// Example:
//
//	Test(t,
//	    That("foo", "a", "b").Then("-q", "foo[3]").ExitsWith(1),
//	    That("-n").Prints("foo\n"))
//
// If some setup is needed, use the TestWithSetup function instead.
package settest

import (
	"bytes"
	"strings"
	"testing"

	"github.com/elves/setvar/pkg/set"
	"github.com/elves/setvar/pkg/vars"
	"github.com/google/go-cmp/cmp"
)

// Case is a test case that can be used in Test.
type Case struct {
	calls       [][]string
	lastStatus  int
	interactive bool
	setup       func(env *vars.Env)
	verify      func(t *testing.T, env *vars.Env)
	want        result
}

type result struct {
	Out       []byte
	StderrOut []byte
	Status    int
}

// That returns a new Case that calls the builtin with the given arguments.
// To make more calls in the same environment, use the Then method.
//
// When combined with subsequent method calls, a test case reads like English.
// For example, a test for the fact that "set -q foo" fails reads:
//
//	That("-q", "foo").ExitsWith(1)
func That(args ...string) Case {
	return Case{calls: [][]string{args}}
}

// Then returns a new Case that calls the builtin again with the given
// arguments. Output of all calls is collected; the status is that of the last
// call.
func (c Case) Then(args ...string) Case {
	c.calls = append(c.calls, args)
	return c
}

// WithSetup returns a new Case with the given setup function executed on the
// environment before the builtin is called.
func (c Case) WithSetup(f func(*vars.Env)) Case {
	c.setup = f
	return c
}

// WithLastStatus returns a new Case where the status before each call is n.
func (c Case) WithLastStatus(n int) Case {
	c.lastStatus = n
	return c
}

// Interactive returns a new Case where the builtin runs in an interactive
// session.
func (c Case) Interactive() Case {
	c.interactive = true
	return c
}

// DoesNothing returns c unchanged. It is useful to mark tests that don't have
// any output, for example:
//
//	That("foo", "bar").DoesNothing()
func (c Case) DoesNothing() Case {
	return c
}

// Passes returns an altered Case that runs an additional verification
// function on the environment after the calls.
func (c Case) Passes(f func(t *testing.T, env *vars.Env)) Case {
	c.verify = f
	return c
}

// Prints returns an altered Case that requires the calls to write exactly s
// to the output stream.
func (c Case) Prints(s string) Case {
	c.want.Out = []byte(s)
	return c
}

// PrintsStderrWith returns an altered Case that requires the error stream to
// contain the given text.
func (c Case) PrintsStderrWith(s string) Case {
	c.want.StderrOut = []byte(s)
	return c
}

// ExitsWith returns an altered Case that requires the last call to return the
// given status.
func (c Case) ExitsWith(status int) Case {
	c.want.Status = status
	return c
}

// Test runs test cases. For each test case, a new environment is created with
// vars.NewEnv.
func Test(t *testing.T, tests ...Case) {
	t.Helper()
	TestWithSetup(t, func(*vars.Env) {}, tests...)
}

// TestWithSetup runs test cases. For each test case, a new environment is
// created with vars.NewEnv and passed to the setup function.
func TestWithSetup(t *testing.T, setup func(*vars.Env), tests ...Case) {
	t.Helper()
	for _, tc := range tests {
		t.Run(name(tc.calls), func(t *testing.T) {
			t.Helper()
			env := vars.NewEnv(nil)
			setup(env)
			if tc.setup != nil {
				tc.setup(env)
			}

			r := callAndCollect(env, tc)

			if tc.verify != nil {
				tc.verify(t, env)
			}
			if !bytes.Equal(tc.want.Out, r.Out) {
				t.Errorf("got out (-want +got):\n%s",
					cmp.Diff(string(tc.want.Out), string(r.Out)))
			}
			if tc.want.StderrOut == nil {
				if len(r.StderrOut) > 0 {
					t.Errorf("got stderr out %q, want empty", r.StderrOut)
				}
			} else {
				if !bytes.Contains(r.StderrOut, tc.want.StderrOut) {
					t.Errorf("got stderr out %q, want output containing %q",
						r.StderrOut, tc.want.StderrOut)
				}
			}
			if r.Status != tc.want.Status {
				t.Errorf("got status %d, want %d", r.Status, tc.want.Status)
			}
		})
	}
}

func callAndCollect(env *vars.Env, tc Case) result {
	var out, errOut bytes.Buffer
	b := &set.Builtin{Store: env, Interactive: tc.interactive}
	status := 0
	for _, args := range tc.calls {
		status = b.Call(set.Streams{Out: &out, Err: &errOut}, args, tc.lastStatus)
	}
	return result{Out: out.Bytes(), StderrOut: errOut.Bytes(), Status: status}
}

func name(calls [][]string) string {
	lines := make([]string, len(calls))
	for i, args := range calls {
		lines[i] = strings.Join(append([]string{"set"}, args...), " ")
	}
	return strings.Join(lines, "\n")
}
