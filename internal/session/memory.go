package session

import (
	"context" // Interface conformance
	"sync"    // Guards the map
	"time"    // Expiry
)

type memoryEntry struct {
	msgs    []Message
	expires time.Time
}

// MemoryStore keeps flashes in process memory. Used in tests and when Redis
// is not configured or unreachable.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]memoryEntry
	ttl     time.Duration
	now     func() time.Time
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore creates a MemoryStore whose entries expire after ttl
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), ttl: ttl, now: time.Now}
}

func (s *MemoryStore) Push(_ context.Context, sessionID string, m Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	s.purgeLocked(now)
	e := s.entries[sessionID]
	e.msgs = append(e.msgs, m)
	e.expires = now.Add(s.ttl)
	s.entries[sessionID] = e
	return nil
}

func (s *MemoryStore) Pop(_ context.Context, sessionID string) ([]Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.purgeLocked(s.now())
	e, ok := s.entries[sessionID]
	if !ok {
		return nil, nil
	}
	delete(s.entries, sessionID)
	return e.msgs, nil
}

func (s *MemoryStore) Ping(context.Context) error {
	return nil
}

func (s *MemoryStore) purgeLocked(now time.Time) {
	for id, e := range s.entries {
		if now.After(e.expires) {
			delete(s.entries, id)
		}
	}
}
