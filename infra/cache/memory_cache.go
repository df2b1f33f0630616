package cache

import (
	"context"
	"sync"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain/voice"
	"github.com/google/uuid"
)

// MemorySessionStore keeps voice dialogue sessions in process memory.
type MemorySessionStore struct {
	sessions map[uuid.UUID]*sessionEntry
	ttl      time.Duration
	now      func() time.Time
	mu       sync.RWMutex
}

type sessionEntry struct {
	session   voice.Session
	expiresAt time.Time
}

// NewMemorySessionStore creates an in-memory store whose entries expire after ttl.
func NewMemorySessionStore(ttl time.Duration) *MemorySessionStore {
	return &MemorySessionStore{
		sessions: make(map[uuid.UUID]*sessionEntry),
		ttl:      ttl,
		now:      time.Now,
	}
}

// Get returns the session, or nil when absent or expired.
func (c *MemorySessionStore) Get(_ context.Context, userID uuid.UUID) (*voice.Session, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.sessions[userID]
	if !exists || c.now().After(entry.expiresAt) {
		return nil, nil
	}
	s := entry.session
	return &s, nil
}

// Save stores the session and refreshes its TTL.
func (c *MemorySessionStore) Save(_ context.Context, userID uuid.UUID, s voice.Session) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for id, entry := range c.sessions {
		if now.After(entry.expiresAt) {
			delete(c.sessions, id)
		}
	}
	c.sessions[userID] = &sessionEntry{session: s, expiresAt: now.Add(c.ttl)}
	return nil
}

// Delete removes the session.
func (c *MemorySessionStore) Delete(_ context.Context, userID uuid.UUID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	delete(c.sessions, userID)
	return nil
}
