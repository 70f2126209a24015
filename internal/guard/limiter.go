package guard

import (
	"fmt"
	"log/slog"
	"math"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/cookify/receipt-ocr-service/internal/common"
)

// Machine-readable rejection reasons.
const (
	ReasonWindowExceeded   = "window_exceeded"
	ReasonProgressiveDelay = "progressive_delay"
)

// Decision is the admission-control outcome for one request.
type Decision struct {
	Allowed    bool
	RetryAfter time.Duration
	Reason     string
}

// clientState is the per-client mutable counter state. Mutated only under its
// own mutex; the critical section covers the read-prune-compare-append
// sequence and nothing else.
type clientState struct {
	mu         sync.Mutex
	timestamps []time.Time
	violations int
	delayUntil time.Time
}

// Limiter enforces per-client sliding-window quotas with progressive backoff
// for repeat violators. State lives in an expiring cache whose janitor sweep
// removes stale clients, bounding memory growth.
type Limiter struct {
	cfg    common.RateLimitConfig
	states *gocache.Cache
	logger *slog.Logger
	now    func() time.Time
}

func NewLimiter(cfg common.RateLimitConfig, logger *slog.Logger) *Limiter {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Window <= 0 {
		cfg.Window = time.Minute
	}
	if cfg.DelayMultiplier <= 1 {
		cfg.DelayMultiplier = 2.0
	}
	if cfg.MaxDelay <= 0 {
		cfg.MaxDelay = 15 * time.Minute
	}
	if cfg.StaleCutoff <= 0 {
		cfg.StaleCutoff = 30 * time.Minute
	}
	if cfg.SweepInterval <= 0 {
		cfg.SweepInterval = 5 * time.Minute
	}
	return &Limiter{
		cfg:    cfg,
		states: gocache.New(cfg.StaleCutoff, cfg.SweepInterval),
		logger: logger,
		now:    time.Now,
	}
}

// ClientKey builds the rate-limit key from the peer address and a truncated
// user agent.
func ClientKey(addr, userAgent string) string {
	if len(userAgent) > 32 {
		userAgent = userAgent[:32]
	}
	return fmt.Sprintf("%s|%s", addr, userAgent)
}

// Check runs the admission decision for one request from clientKey.
func (l *Limiter) Check(clientKey string) Decision {
	st := l.state(clientKey)
	now := l.now()

	st.mu.Lock()
	defer st.mu.Unlock()

	// Active progressive delay: reject without counting the request.
	if now.Before(st.delayUntil) {
		return Decision{
			Allowed:    false,
			RetryAfter: st.delayUntil.Sub(now),
			Reason:     ReasonProgressiveDelay,
		}
	}

	// Prune timestamps that fell out of the sliding window.
	cutoff := now.Add(-l.cfg.Window)
	kept := st.timestamps[:0]
	for _, ts := range st.timestamps {
		if ts.After(cutoff) {
			kept = append(kept, ts)
		}
	}
	st.timestamps = kept

	if len(st.timestamps) >= l.cfg.MaxRequests {
		st.violations++
		delay := l.progressiveDelay(st.violations)
		st.delayUntil = now.Add(delay)
		l.logger.Warn("rate limit exceeded",
			"client_key", clientKey,
			"violations", st.violations,
			"delay_ms", delay.Milliseconds(),
		)
		return Decision{Allowed: false, RetryAfter: delay, Reason: ReasonWindowExceeded}
	}

	st.timestamps = append(st.timestamps, now)
	return Decision{Allowed: true}
}

// progressiveDelay escalates with each violation: window × multiplier^(n-1),
// capped at MaxDelay.
func (l *Limiter) progressiveDelay(violations int) time.Duration {
	delay := time.Duration(float64(l.cfg.Window) * math.Pow(l.cfg.DelayMultiplier, float64(violations-1)))
	if delay > l.cfg.MaxDelay || delay <= 0 {
		delay = l.cfg.MaxDelay
	}
	return delay
}

// state fetches or creates the per-client entry, refreshing its TTL so active
// clients survive the janitor sweep.
func (l *Limiter) state(clientKey string) *clientState {
	if v, ok := l.states.Get(clientKey); ok {
		st := v.(*clientState)
		l.states.SetDefault(clientKey, st)
		return st
	}
	st := &clientState{}
	if err := l.states.Add(clientKey, st, gocache.DefaultExpiration); err != nil {
		// Lost the insert race; use the winner's state.
		if v, ok := l.states.Get(clientKey); ok {
			return v.(*clientState)
		}
		l.states.SetDefault(clientKey, st)
	}
	return st
}
