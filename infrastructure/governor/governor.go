package governor

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/recetario/recetario-mcp/infrastructure/metrics"
)

// Clock abstracts time so admission pacing is testable with a fake clock
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

func (systemClock) Sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}

// Config defines the provider call ceilings enforced by the governor
type Config struct {
	MaxRPS       float64 // Requests per second ceiling; <= 0 disables search
	MonthlyQuota int     // Calls per calendar month; <= 0 disables search
}

// Governor serializes outbound provider calls against a requests-per-second
// ceiling and a monthly quota. The quota counter lives in a shared store when
// one is configured so multiple instances stay within a single budget;
// otherwise counts are process-local.
type Governor struct {
	cfg    Config
	clock  Clock
	shared QuotaStore

	mu       sync.Mutex
	lastCall time.Time

	fallback *MemoryQuotaStore
}

// New creates a governor. shared may be nil.
func New(cfg Config, shared QuotaStore) *Governor {
	return newGovernor(cfg, shared, systemClock{})
}

func newGovernor(cfg Config, shared QuotaStore, clock Clock) *Governor {
	return &Governor{
		cfg:      cfg,
		clock:    clock,
		shared:   shared,
		fallback: NewMemoryQuotaStore(),
	}
}

// Admit decides whether a provider call may proceed now. It blocks the caller
// long enough to respect the RPS ceiling, then charges the monthly quota.
// A false return is a throttle signal, not an error: callers answer with an
// empty result set.
func (g *Governor) Admit(ctx context.Context) bool {
	if g.cfg.MaxRPS <= 0 || g.cfg.MonthlyQuota <= 0 {
		metrics.RecordAdmissionDenial("disabled")
		return false
	}

	g.waitForSlot(ctx)

	if !g.chargeQuota(ctx) {
		metrics.RecordAdmissionDenial("quota")
		return false
	}
	return true
}

// waitForSlot enforces the minimum interval between admitted calls.
// Concurrent callers serialize on the mutex; FIFO order is not guaranteed.
func (g *Governor) waitForSlot(ctx context.Context) {
	interval := time.Duration(float64(time.Second) / g.cfg.MaxRPS)

	g.mu.Lock()
	defer g.mu.Unlock()

	if wait := g.lastCall.Add(interval).Sub(g.clock.Now()); wait > 0 {
		g.clock.Sleep(ctx, wait)
	}
	g.lastCall = g.clock.Now()
}

func (g *Governor) chargeQuota(ctx context.Context) bool {
	now := g.clock.Now().UTC()
	key := "quota:" + now.Format("2006-01")
	ttl := monthEnd(now).Sub(now)

	if g.shared != nil {
		count, err := g.shared.Incr(ctx, key, ttl)
		if err == nil {
			return count <= int64(g.cfg.MonthlyQuota)
		}
		// Shared store trouble degrades quota accuracy to this instance,
		// never the call path.
		log.Warn().Err(err).Msg("shared quota store unavailable, using in-process counter")
	}

	count, _ := g.fallback.Incr(ctx, key, ttl)
	return count <= int64(g.cfg.MonthlyQuota)
}

// monthEnd returns the first instant of the following month, so unused quota
// keys in the shared store expire as the month rolls over.
func monthEnd(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, 1, 0)
}
