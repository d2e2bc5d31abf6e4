package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMemoryRevocationList(t *testing.T) {
	now := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	l := NewMemoryRevocationList()
	l.now = func() time.Time { return now }

	l.Revoke("a", now.Add(time.Hour))
	l.Revoke("b", now.Add(2*time.Hour))
	assert.True(t, l.IsRevoked("a"))
	assert.False(t, l.IsRevoked("c"))

	now = now.Add(90 * time.Minute)
	assert.False(t, l.IsRevoked("a"), "expired entries no longer count")
	assert.True(t, l.IsRevoked("b"))

	// revoking prunes lapsed entries
	l.Revoke("c", now.Add(time.Hour))
	assert.Equal(t, 2, l.Len())
}
