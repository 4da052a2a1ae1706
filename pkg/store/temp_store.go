package store

import (
	"path/filepath"

	"github.com/elves/setvar/pkg/testutil"
)

// MustTempStore returns a Store backed by a temporary file. The Store is
// closed when the test finishes.
func MustTempStore(c testutil.TempDirer) DBStore {
	st, err := NewStore(filepath.Join(c.TempDir(), "db"))
	if err != nil {
		panic(err)
	}
	c.Cleanup(func() { st.Close() })
	return st
}
