// Package storetest keeps test suites against tables of universal variables.
package storetest

import (
	"errors"
	"testing"

	"github.com/elves/setvar/pkg/vars"
	"github.com/google/go-cmp/cmp"
)

// TestUniversal tests the functionality of a table of universal variables.
// The table must start empty.
func TestUniversal(t *testing.T, tbl vars.Table) {
	if _, ok := tbl.Get("foo"); ok {
		t.Errorf("Get(foo) on empty table reports existence")
	}
	if names := tbl.Names(); len(names) != 0 {
		t.Errorf("Names() on empty table -> %v, want none", names)
	}

	puts := []struct {
		name string
		v    vars.Var
	}{
		{"foo", vars.Var{Values: []string{"a", "b c"}, Exported: true}},
		{"empty", vars.Var{Values: []string{}}},
		{"blank", vars.Var{Values: []string{""}}},
		{"bar", vars.Var{Values: []string{"x"}}},
		{"ctrl", vars.Var{Values: []string{"a\x1eb", "\x10"}}},
		{"marker", vars.Var{Values: []string{"\x1d"}}},
	}
	for _, put := range puts {
		if err := tbl.Put(put.name, put.v); err != nil {
			t.Fatalf("Put(%q) -> %v", put.name, err)
		}
	}
	for _, put := range puts {
		v, ok := tbl.Get(put.name)
		if !ok {
			t.Errorf("Get(%q) -> missing", put.name)
			continue
		}
		if diff := cmp.Diff(put.v, v); diff != "" {
			t.Errorf("Get(%q) (-want +got):\n%s", put.name, diff)
		}
	}

	wantNames := []string{"bar", "blank", "ctrl", "empty", "foo", "marker"}
	if diff := cmp.Diff(wantNames, tbl.Names()); diff != "" {
		t.Errorf("Names() (-want +got):\n%s", diff)
	}

	if err := tbl.Delete("foo"); err != nil {
		t.Errorf("Delete(foo) -> %v", err)
	}
	if _, ok := tbl.Get("foo"); ok {
		t.Errorf("foo exists after Delete")
	}
	if err := tbl.Delete("foo"); !errors.Is(err, vars.ErrNotFound) {
		t.Errorf("Delete(foo) again -> %v, want ErrNotFound", err)
	}
}
