// Package dedupe tracks headlines that already produced a prediction so bulk
// population does not regenerate them. This is soft idempotency only: the
// store itself never enforces uniqueness and duplicates remain tolerated.
package dedupe

import (
	"context"
	"strings"
	"sync"
	"time"
)

type Tracker interface {
	// Seen reports whether the headline was marked inside the TTL window.
	Seen(ctx context.Context, headline string) bool
	// Mark records that the headline has produced a prediction.
	Mark(ctx context.Context, headline string)
}

// Memory keeps a fixed-size set of recently used headlines. order holds keys
// oldest first; a re-marked key moves to the back so it is not the next
// eviction candidate.
type Memory struct {
	mu       sync.Mutex
	items    map[string]time.Time
	order    []string
	capacity int
	ttl      time.Duration
}

func NewMemory(capacity int, ttl time.Duration) *Memory {
	if capacity <= 0 {
		capacity = 1
	}
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &Memory{
		items:    make(map[string]time.Time, capacity),
		order:    make([]string, 0, capacity),
		capacity: capacity,
		ttl:      ttl,
	}
}

func (m *Memory) Seen(_ context.Context, headline string) bool {
	key := normalize(headline)
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	ts, ok := m.items[key]
	return ok && now.Sub(ts) <= m.ttl
}

func (m *Memory) Mark(_ context.Context, headline string) {
	key := normalize(headline)
	now := time.Now()

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.items[key]; ok {
		for i, k := range m.order {
			if k == key {
				m.order = append(m.order[:i], m.order[i+1:]...)
				break
			}
		}
	} else {
		for len(m.order) >= m.capacity {
			oldest := m.order[0]
			m.order = m.order[1:]
			delete(m.items, oldest)
		}
	}
	m.order = append(m.order, key)
	m.items[key] = now
}

func normalize(headline string) string {
	return strings.ToLower(strings.TrimSpace(headline))
}
