package governor

import (
	"context"
	"sync"
	"time"
)

// QuotaStore is a month-keyed call counter. Incr returns the count after
// incrementing; ttl bounds the key's remaining lifetime where the backend
// supports expiry.
type QuotaStore interface {
	Incr(ctx context.Context, key string, ttl time.Duration) (int64, error)
}

// MemoryQuotaStore counts calls in-process. Counts survive only until
// restart; stale month keys are kept since the map stays tiny.
type MemoryQuotaStore struct {
	mu     sync.Mutex
	counts map[string]int64
}

// NewMemoryQuotaStore creates an empty in-process counter
func NewMemoryQuotaStore() *MemoryQuotaStore {
	return &MemoryQuotaStore{counts: make(map[string]int64)}
}

// Incr increments and returns the counter for key. It never fails.
func (m *MemoryQuotaStore) Incr(_ context.Context, key string, _ time.Duration) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.counts[key]++
	return m.counts[key], nil
}
