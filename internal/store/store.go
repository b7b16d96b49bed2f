package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/alex909w/eventify/pkg/config"
)

// ErrKeyNotFound is returned by Get when no value exists for the key.
// Callers translate it into their own typed not-found outcome.
var ErrKeyNotFound = errors.New("store: key not found")

// KV is the persistent string-keyed store all repositories run on.
// Values are JSON-serialized records in a flat namespace (see keys.go).
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
	// Keys returns every key starting with prefix.
	Keys(prefix string) ([]string, error)
	// Apply executes all writes and deletes in a single transaction,
	// so multi-key entity mutations never leave partial state.
	Apply(batch Batch) error
	Close() error
}

// Batch is a set of writes and deletes applied atomically.
type Batch struct {
	Set    map[string][]byte
	Delete []string
}

// NewBatch returns an empty batch ready for staging.
func NewBatch() Batch {
	return Batch{Set: make(map[string][]byte)}
}

// SetJSON stages a JSON-encoded record under key.
func (b *Batch) SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	b.Set[key] = data
	return nil
}

// DB is the active store backend, set by Init.
var DB KV

// Init opens the configured backend and installs it as the package-global store.
func Init(cfg config.StoreConfig) error {
	var (
		kv  KV
		err error
	)

	switch cfg.Backend {
	case "sqlite", "postgres":
		kv, err = OpenSQL(cfg.Backend, cfg.DSN)
	default:
		// Badger is the embedded default
		kv, err = OpenBadger(cfg.Path, false)
	}
	if err != nil {
		return fmt.Errorf("failed to open %s store: %w", cfg.Backend, err)
	}

	DB = kv
	return nil
}

// Close closes the active backend.
func Close() error {
	if DB == nil {
		return nil
	}
	return DB.Close()
}

// GetJSON reads key and decodes the stored JSON into out.
func GetJSON(key string, out interface{}) error {
	data, err := DB.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decode %s: %w", key, err)
	}
	return nil
}

// SetJSON writes v under key as JSON.
func SetJSON(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return DB.Set(key, data)
}
