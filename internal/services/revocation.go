package services

import (
	"sync"
	"time"
)

// RevocationList remembers signed-out token IDs until the tokens would
// have expired anyway.
type RevocationList interface {
	Revoke(jti string, until time.Time)
	IsRevoked(jti string) bool
}

// MemoryRevocationList is an in-memory RevocationList.
type MemoryRevocationList struct {
	entries map[string]time.Time
	now     func() time.Time
	mu      sync.RWMutex
}

// NewMemoryRevocationList creates an empty MemoryRevocationList.
func NewMemoryRevocationList() *MemoryRevocationList {
	return &MemoryRevocationList{
		entries: make(map[string]time.Time),
		now:     time.Now,
	}
}

// Revoke records jti as revoked until the given time and drops entries
// that have already lapsed.
func (l *MemoryRevocationList) Revoke(jti string, until time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	for id, exp := range l.entries {
		if !exp.After(now) {
			delete(l.entries, id)
		}
	}
	l.entries[jti] = until
}

// IsRevoked reports whether jti is still on the list.
func (l *MemoryRevocationList) IsRevoked(jti string) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	exp, ok := l.entries[jti]
	return ok && exp.After(l.now())
}

// Len returns the number of tracked entries.
func (l *MemoryRevocationList) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.entries)
}
