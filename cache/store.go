package cache

import (
	"context"
	"slices"
)

// Store persists entries by key.
//
// Load reports ok=false for a missing key. Implementations must be safe for
// concurrent use; concurrent Saves of one key keep the last write.
type Store interface {
	Load(ctx context.Context, key string) (e Entry, ok bool, err error)
	Save(ctx context.Context, key string, e Entry) error
}

// MemoryStore keeps entries in process memory.
type MemoryStore struct {
	entries *lru[string, Entry]
}

// NewMemoryStore returns a memory store holding roughly softLimit entries.
// Zero means unbounded.
func NewMemoryStore(softLimit int) *MemoryStore {
	return &MemoryStore{entries: newLRU[string, Entry](softLimit)}
}

// Load implements Store. The returned bytes are a copy.
func (m *MemoryStore) Load(_ context.Context, key string) (Entry, bool, error) {
	e, ok := m.entries.get(key)
	e.Bytes = slices.Clone(e.Bytes)
	return e, ok, nil
}

// Save implements Store. It keeps a copy of e.Bytes.
func (m *MemoryStore) Save(_ context.Context, key string, e Entry) error {
	e.Bytes = slices.Clone(e.Bytes)
	m.entries.set(key, e)
	return nil
}

// Len returns the number of stored entries.
func (m *MemoryStore) Len() int {
	return m.entries.len()
}
