// Package store keeps universal variables in a bbolt database, so that they
// survive the session and are shared by all sessions using the same file.
package store

import (
	"fmt"
	"time"

	"github.com/elves/setvar/pkg/logutil"
	bolt "go.etcd.io/bbolt"
)

var logger = logutil.GetLogger("[store] ")

// Names of buckets.
const (
	bucketUniversal = "universal"
)

var initDB = map[string](func(*bolt.Tx) error){}

// DBStore is a universal variable table backed by a database file.
type DBStore interface {
	Get(name string) (Var, bool)
	Put(name string, v Var) error
	Delete(name string) error
	Names() []string
	Close() error
}

type dbStore struct {
	db *bolt.DB
}

// NewStore opens the database at the given path, creating it if needed.
func NewStore(dbname string) (DBStore, error) {
	db, err := bolt.Open(dbname, 0644,
		&bolt.Options{Timeout: time.Second, NoFreelistSync: true})
	if err != nil {
		return nil, fmt.Errorf("open store %s: %w", dbname, err)
	}
	return NewStoreFromDB(db)
}

// NewStoreFromDB creates a new Store from a bolt DB.
func NewStoreFromDB(db *bolt.DB) (DBStore, error) {
	logger.Println("initializing store")
	defer logger.Println("initialized store")
	st := &dbStore{db}

	err := db.Update(func(tx *bolt.Tx) error {
		for name, fn := range initDB {
			err := fn(tx)
			if err != nil {
				return fmt.Errorf("failed to %s: %w", name, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}
	return st, nil
}

// Close closes the underlying database.
func (s *dbStore) Close() error {
	return s.db.Close()
}
