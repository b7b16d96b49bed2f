package store

import (
	"errors"
	"fmt"
	"os"

	badger "github.com/dgraph-io/badger/v4"
)

// badgerStore is the embedded default backend: a local BadgerDB directory,
// the server-side analogue of the mobile app's device-local storage.
type badgerStore struct {
	db *badger.DB
}

// OpenBadger opens (or creates) a BadgerDB store at path.
// With inMemory set, nothing touches disk; used by tests.
func OpenBadger(path string, inMemory bool) (KV, error) {
	var opts badger.Options
	if inMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if err := os.MkdirAll(path, 0o755); err != nil {
			return nil, fmt.Errorf("create badger dir %s: %w", path, err)
		}
		opts = badger.DefaultOptions(path)
	}
	// Badger logs through its own logger by default; keep it quiet and let
	// the application logger report store errors instead.
	opts = opts.WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &badgerStore{db: db}, nil
}

func (s *badgerStore) Get(key string) ([]byte, error) {
	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrKeyNotFound
	}
	return value, err
}

func (s *badgerStore) Set(key string, value []byte) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
}

func (s *badgerStore) Delete(key string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete([]byte(key))
	})
}

func (s *badgerStore) Keys(prefix string) ([]string, error) {
	keys := make([]string, 0)
	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		p := []byte(prefix)
		for it.Seek(p); it.ValidForPrefix(p); it.Next() {
			keys = append(keys, string(it.Item().KeyCopy(nil)))
		}
		return nil
	})
	return keys, err
}

func (s *badgerStore) Apply(batch Batch) error {
	return s.db.Update(func(txn *badger.Txn) error {
		for key, value := range batch.Set {
			if err := txn.Set([]byte(key), value); err != nil {
				return err
			}
		}
		for _, key := range batch.Delete {
			if err := txn.Delete([]byte(key)); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *badgerStore) Close() error {
	return s.db.Close()
}
