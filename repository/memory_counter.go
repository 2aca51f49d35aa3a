package repository

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	count     int64
	expiresAt time.Time
}

// MemoryCounter is an in-process CounterRepository for single-instance runs
// and tests.
type MemoryCounter struct {
	mu   sync.Mutex
	data map[string]*memoryEntry
	now  func() time.Time
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		data: make(map[string]*memoryEntry),
		now:  time.Now,
	}
}

func (m *MemoryCounter) Incr(_ context.Context, key string, ttl time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	entry, ok := m.data[key]
	if !ok || !now.Before(entry.expiresAt) {
		entry = &memoryEntry{expiresAt: now.Add(ttl)}
		m.data[key] = entry
	}

	entry.count++
	return entry.count, nil
}

// Sweep drops expired keys.
func (m *MemoryCounter) Sweep() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.now()
	for key, entry := range m.data {
		if !now.Before(entry.expiresAt) {
			delete(m.data, key)
		}
	}
}

func (m *MemoryCounter) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.data)
}
