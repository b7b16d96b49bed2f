package store

import (
	"sort"
	"strings"
	"sync"
)

// memoryStore is a map-backed KV used by tests.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// OpenMemory returns an empty in-process store.
func OpenMemory() KV {
	return &memoryStore{data: make(map[string][]byte)}
}

func (s *memoryStore) Get(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, ErrKeyNotFound
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (s *memoryStore) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]byte, len(value))
	copy(stored, value)
	s.data[key] = stored
	return nil
}

func (s *memoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)
	return nil
}

func (s *memoryStore) Keys(prefix string) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0)
	for key := range s.data {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	return keys, nil
}

func (s *memoryStore) Apply(batch Batch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for key, value := range batch.Set {
		stored := make([]byte, len(value))
		copy(stored, value)
		s.data[key] = stored
	}
	for _, key := range batch.Delete {
		delete(s.data, key)
	}
	return nil
}

func (s *memoryStore) Close() error {
	return nil
}
