package vars

import (
	"errors"
	"sort"
)

// Env is a Store made of three independent scope tables. The local scope is a
// stack of blocks; lookups search it from the innermost block outwards.
type Env struct {
	locals    []Table
	global    Table
	universal Table
	readOnly  map[string]bool
}

var errNoBlock = errors.New("no local block to end")

// NewEnv creates an Env with one top-level local block and empty in-memory
// global table. If universal is nil, an in-memory table is used.
func NewEnv(universal Table) *Env {
	if universal == nil {
		universal = NewMapTable()
	}
	e := &Env{
		locals:    []Table{NewMapTable()},
		global:    NewMapTable(),
		universal: universal,
		readOnly:  map[string]bool{},
	}
	for _, name := range DefaultReadOnly {
		e.readOnly[name] = true
	}
	return e
}

// SetReadOnly marks the named variables as read-only.
func (e *Env) SetReadOnly(names ...string) {
	for _, name := range names {
		e.readOnly[name] = true
	}
}

// SetSpecial writes a global variable, bypassing the rules for special
// variables and keeping its export status. It is used to maintain variables
// like status and version.
func (e *Env) SetSpecial(name string, values ...string) error {
	old, _ := e.global.Get(name)
	return e.global.Put(name, Var{Values: values, Exported: old.Exported})
}

// Import writes an exported global variable taken from the process
// environment, bypassing the rules for special variables.
func (e *Env) Import(name string, values []string) error {
	return e.global.Put(name, Var{Values: values, Exported: true})
}

// PushBlock opens a new local block.
func (e *Env) PushBlock() { e.locals = append(e.locals, NewMapTable()) }

// PopBlock closes the innermost local block, discarding its variables. The
// top-level block cannot be closed.
func (e *Env) PopBlock() error {
	if len(e.locals) == 1 {
		return errNoBlock
	}
	e.locals = e.locals[:len(e.locals)-1]
	return nil
}

// Depth returns the number of open blocks, not counting the top-level one.
func (e *Env) Depth() int { return len(e.locals) - 1 }

// Returns the tables searched for a scope, in lookup order.
func (e *Env) tables(scope Scope) []Table {
	switch scope {
	case Local:
		tables := make([]Table, len(e.locals))
		for i, t := range e.locals {
			tables[len(tables)-1-i] = t
		}
		return tables
	case Global:
		return []Table{e.global}
	case Universal:
		return []Table{e.universal}
	default:
		return append(e.tables(Local), e.global, e.universal)
	}
}

// Returns the first table in the scope that has the variable.
func (e *Env) find(name string, scope Scope) (Table, Var, bool) {
	for _, t := range e.tables(scope) {
		if v, ok := t.Get(name); ok {
			return t, v, true
		}
	}
	return nil, Var{}, false
}

func (e *Env) Get(name string, scope Scope) (Var, bool) {
	_, v, ok := e.find(name, scope)
	return v, ok
}

func (e *Env) Exists(name string, scope Scope) bool {
	_, _, ok := e.find(name, scope)
	return ok
}

// Set assigns a variable. With the default scope, the innermost scope that
// already has the variable is written; a new variable goes into the innermost
// local block when one is open, and into the global scope otherwise.
func (e *Env) Set(name string, values []string, mode Mode) error {
	if err := e.checkSpecial(name, values, mode.Scope); err != nil {
		return err
	}
	t, old, exists := e.find(name, mode.Scope)
	if !exists {
		switch mode.Scope {
		case Local:
			t = e.locals[len(e.locals)-1]
		case Global:
			t = e.global
		case Universal:
			t = e.universal
		default:
			if e.Depth() > 0 {
				t = e.locals[len(e.locals)-1]
			} else {
				t = e.global
			}
		}
	}
	v := Var{Values: values, Exported: old.Exported}
	switch mode.Export {
	case Exported:
		v.Exported = true
	case Unexported:
		v.Exported = false
	}
	return t.Put(name, v)
}

func (e *Env) Remove(name string, scope Scope) error {
	if e.readOnly[name] {
		return ErrReadOnly
	}
	t, _, ok := e.find(name, scope)
	if !ok {
		return ErrNotFound
	}
	return t.Delete(name)
}

func (e *Env) Names(scope Scope, export Export) []string {
	seen := map[string]bool{}
	var names []string
	for _, t := range e.tables(scope) {
		for _, name := range t.Names() {
			if seen[name] {
				continue
			}
			seen[name] = true
			if export != ExportUnspecified {
				// Export status is that of the visible variable.
				v, _ := e.Get(name, scope)
				if v.Exported != (export == Exported) {
					continue
				}
			}
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
