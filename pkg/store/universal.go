package store

import (
	"github.com/elves/setvar/pkg/vars"
	bolt "go.etcd.io/bbolt"
)

// Var is an alias so that DBStore satisfies vars.Table.
type Var = vars.Var

var _ vars.Table = DBStore(nil)

func init() {
	initDB["initialize universal variable table"] = func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketUniversal))
		return err
	}
}

// Stored values start with one of these bytes, followed by the encoded
// elements.
const (
	markExported   = 'x'
	markUnexported = '-'
)

func marshalVar(v Var) []byte {
	mark := byte(markUnexported)
	if v.Exported {
		mark = markExported
	}
	return append([]byte{mark}, vars.Encode(v.Values)...)
}

func unmarshalVar(data []byte) (Var, bool) {
	if len(data) == 0 || (data[0] != markExported && data[0] != markUnexported) {
		return Var{}, false
	}
	return Var{
		Values:   vars.Decode(string(data[1:])),
		Exported: data[0] == markExported,
	}, true
}

// Get returns a universal variable. Read errors and corrupt records are
// logged and treated as a missing variable.
func (s *dbStore) Get(name string) (Var, bool) {
	var (
		v  Var
		ok bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketUniversal))
		data := b.Get([]byte(name))
		if data == nil {
			return nil
		}
		v, ok = unmarshalVar(data)
		if !ok {
			logger.Printf("corrupt record for universal variable %s", name)
		}
		return nil
	})
	if err != nil {
		logger.Printf("failed to read universal variable %s: %v", name, err)
		return Var{}, false
	}
	return v, ok
}

// Put writes a universal variable.
func (s *dbStore) Put(name string, v Var) error {
	logger.Printf("setting universal variable %s", name)
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketUniversal))
		return b.Put([]byte(name), marshalVar(v))
	})
}

// Delete removes a universal variable. It returns vars.ErrNotFound if there
// is no such variable.
func (s *dbStore) Delete(name string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketUniversal))
		if b.Get([]byte(name)) == nil {
			return vars.ErrNotFound
		}
		return b.Delete([]byte(name))
	})
}

// Names returns the names of all universal variables, sorted.
func (s *dbStore) Names() []string {
	var names []string
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucketUniversal))
		// Keys are iterated in byte order, which is the sorted order.
		return b.ForEach(func(k, _ []byte) error {
			names = append(names, string(k))
			return nil
		})
	})
	if err != nil {
		logger.Printf("failed to list universal variables: %v", err)
	}
	return names
}
