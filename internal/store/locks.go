package store

import "sync"

// Per-entity locks guard the read-modify-write sequences in the repositories
// (attendee counts, running rating means). Locks are keyed by entity id and
// live for the lifetime of the process.
var entityLocks sync.Map

// Lock acquires the mutex for the given entity id and returns its unlock func.
//
//	defer store.Lock(eventID)()
func Lock(id string) func() {
	mu, _ := entityLocks.LoadOrStore(id, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}
