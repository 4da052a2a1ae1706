package vars

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEnv_DefaultScopeLookup(t *testing.T) {
	e := NewEnv(nil)
	mustSet(t, e, "x", []string{"universal"}, Mode{Scope: Universal})
	checkGet(t, e, "x", DefaultScope, []string{"universal"})

	mustSet(t, e, "x", []string{"global"}, Mode{Scope: Global})
	checkGet(t, e, "x", DefaultScope, []string{"global"})

	mustSet(t, e, "x", []string{"local"}, Mode{Scope: Local})
	checkGet(t, e, "x", DefaultScope, []string{"local"})

	checkGet(t, e, "x", Universal, []string{"universal"})
	checkGet(t, e, "x", Global, []string{"global"})
	checkGet(t, e, "x", Local, []string{"local"})
}

func TestEnv_DefaultScopeSet(t *testing.T) {
	e := NewEnv(nil)

	// New variables go to the global scope at the top level.
	mustSet(t, e, "a", []string{"1"}, Mode{})
	if !e.Exists("a", Global) {
		t.Errorf("new variable at top level not global")
	}

	// Inside a block, new variables are local to the block.
	e.PushBlock()
	mustSet(t, e, "b", []string{"1"}, Mode{})
	if e.Exists("b", Global) || !e.Exists("b", Local) {
		t.Errorf("new variable in block not local")
	}
	// Existing variables are written where they are.
	mustSet(t, e, "a", []string{"2"}, Mode{})
	checkGet(t, e, "a", Global, []string{"2"})

	if err := e.PopBlock(); err != nil {
		t.Fatal(err)
	}
	if e.Exists("b", DefaultScope) {
		t.Errorf("local variable survives the end of its block")
	}
	if err := e.PopBlock(); err != errNoBlock {
		t.Errorf("PopBlock on top level -> %v, want errNoBlock", err)
	}
}

func TestEnv_LocalSetModifiesOuterBlock(t *testing.T) {
	e := NewEnv(nil)
	mustSet(t, e, "x", []string{"outer"}, Mode{Scope: Local})
	e.PushBlock()
	mustSet(t, e, "x", []string{"changed"}, Mode{Scope: Local})
	e.PopBlock()
	checkGet(t, e, "x", Local, []string{"changed"})
}

func TestEnv_Export(t *testing.T) {
	e := NewEnv(nil)
	mustSet(t, e, "x", []string{"a"}, Mode{Export: Exported})
	mustSet(t, e, "x", []string{"b"}, Mode{})
	if v, _ := e.Get("x", DefaultScope); !v.Exported {
		t.Errorf("export status not kept by unspecified export")
	}
	mustSet(t, e, "x", []string{"c"}, Mode{Export: Unexported})
	if v, _ := e.Get("x", DefaultScope); v.Exported {
		t.Errorf("variable still exported after Unexported")
	}

	mustSet(t, e, "y", nil, Mode{Export: Exported})
	if diff := cmp.Diff([]string{"y"}, e.Names(DefaultScope, Exported)); diff != "" {
		t.Errorf("exported names (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"x"}, e.Names(DefaultScope, Unexported)); diff != "" {
		t.Errorf("unexported names (-want +got):\n%s", diff)
	}
}

func TestEnv_EmptyAndMissingAreDistinct(t *testing.T) {
	e := NewEnv(nil)
	mustSet(t, e, "empty", []string{}, Mode{})
	mustSet(t, e, "blank", []string{""}, Mode{})

	if v, ok := e.Get("empty", DefaultScope); !ok || len(v.Values) != 0 {
		t.Errorf("empty -> (%v, %v), want zero elements", v, ok)
	}
	if v, ok := e.Get("blank", DefaultScope); !ok || len(v.Values) != 1 {
		t.Errorf("blank -> (%v, %v), want one element", v, ok)
	}
	if _, ok := e.Get("missing", DefaultScope); ok {
		t.Errorf("missing variable exists")
	}
}

func TestEnv_ValuesNotAliased(t *testing.T) {
	e := NewEnv(nil)
	values := []string{"a", "b"}
	mustSet(t, e, "x", values, Mode{})
	values[0] = "changed"
	v, _ := e.Get("x", DefaultScope)
	v.Values[1] = "changed"
	checkGet(t, e, "x", DefaultScope, []string{"a", "b"})
}

func TestEnv_Remove(t *testing.T) {
	e := NewEnv(nil)
	mustSet(t, e, "x", []string{"g"}, Mode{Scope: Global})
	mustSet(t, e, "x", []string{"u"}, Mode{Scope: Universal})

	if err := e.Remove("x", DefaultScope); err != nil {
		t.Fatal(err)
	}
	checkGet(t, e, "x", DefaultScope, []string{"u"})
	if err := e.Remove("x", Global); !errors.Is(err, ErrNotFound) {
		t.Errorf("Remove missing -> %v, want ErrNotFound", err)
	}
}

func TestEnv_SpecialVariables(t *testing.T) {
	e := NewEnv(nil)
	e.SetReadOnly("hostname")
	if err := e.SetSpecial(Status, "0"); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name   string
		values []string
		scope  Scope
		want   error
	}{
		{Status, []string{"1"}, DefaultScope, ErrReadOnly},
		{"hostname", []string{"h"}, Global, ErrReadOnly},
		{Umask, []string{"022"}, Local, ErrWrongScope},
		{Umask, []string{"022"}, Universal, ErrWrongScope},
		{Umask, []string{"999"}, Global, ErrInvalidValue},
		{Umask, []string{"1777"}, Global, ErrInvalidValue},
		{Umask, []string{"022", "027"}, DefaultScope, ErrInvalidValue},
		{Umask, []string{"022"}, Global, nil},
		{Umask, []string{"0027"}, DefaultScope, nil},
	}
	for _, test := range tests {
		err := e.Set(test.name, test.values, Mode{Scope: test.scope})
		if err != test.want {
			t.Errorf("Set(%q, %q, %v) -> %v, want %v",
				test.name, test.values, test.scope, err, test.want)
		}
	}
	if err := e.Remove(Status, DefaultScope); err != ErrReadOnly {
		t.Errorf("Remove(status) -> %v, want ErrReadOnly", err)
	}
	checkGet(t, e, Status, Global, []string{"0"})
}

func TestEnv_ImportKeepsExportThroughSetSpecial(t *testing.T) {
	e := NewEnv(nil)
	if err := e.Import("SHLVL", []string{"1"}); err != nil {
		t.Fatal(err)
	}
	if err := e.SetSpecial("SHLVL", "2"); err != nil {
		t.Fatal(err)
	}
	v, _ := e.Get("SHLVL", Global)
	if !v.Exported {
		t.Errorf("SHLVL is no longer exported")
	}
	checkGet(t, e, "SHLVL", Global, []string{"2"})
}

func mustSet(t *testing.T, e *Env, name string, values []string, mode Mode) {
	t.Helper()
	if err := e.Set(name, values, mode); err != nil {
		t.Fatalf("Set(%q, %q, %v) -> %v", name, values, mode, err)
	}
}

func checkGet(t *testing.T, e *Env, name string, scope Scope, want []string) {
	t.Helper()
	v, ok := e.Get(name, scope)
	if !ok {
		t.Errorf("Get(%q, %v) -> missing, want %q", name, scope, want)
		return
	}
	if diff := cmp.Diff(want, v.Values); diff != "" {
		t.Errorf("Get(%q, %v) (-want +got):\n%s", name, scope, diff)
	}
}
