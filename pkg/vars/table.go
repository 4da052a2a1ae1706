package vars

import "sort"

// Table holds the variables of one scope.
type Table interface {
	Get(name string) (Var, bool)
	Put(name string, v Var) error
	// Delete returns ErrNotFound if the variable does not exist.
	Delete(name string) error
	Names() []string
}

// NewMapTable returns a Table kept in memory.
func NewMapTable() Table { return mapTable{} }

type mapTable map[string]Var

func (t mapTable) Get(name string) (Var, bool) {
	v, ok := t[name]
	if !ok {
		return Var{}, false
	}
	return v.Clone(), true
}

func (t mapTable) Put(name string, v Var) error {
	t[name] = v.Clone()
	return nil
}

func (t mapTable) Delete(name string) error {
	if _, ok := t[name]; !ok {
		return ErrNotFound
	}
	delete(t, name)
	return nil
}

func (t mapTable) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
