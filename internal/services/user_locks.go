package services

import "sync"

// userLocks serializes work per user id. Entries are dropped once nobody holds
// or waits on them.
type userLocks struct {
	mu      sync.Mutex
	entries map[uint]*userLockEntry
}

type userLockEntry struct {
	mu   sync.Mutex
	refs int
}

func newUserLocks() *userLocks {
	return &userLocks{entries: make(map[uint]*userLockEntry)}
}

func (locks *userLocks) lock(userID uint) func() {
	locks.mu.Lock()
	entry, ok := locks.entries[userID]
	if !ok {
		entry = &userLockEntry{}
		locks.entries[userID] = entry
	}
	entry.refs++
	locks.mu.Unlock()

	entry.mu.Lock()
	return func() {
		entry.mu.Unlock()

		locks.mu.Lock()
		entry.refs--
		if entry.refs == 0 {
			delete(locks.entries, userID)
		}
		locks.mu.Unlock()
	}
}
