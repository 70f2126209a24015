package guard

import (
	"testing"
	"time"

	"github.com/cookify/receipt-ocr-service/internal/common"
)

func testLimiter(cfg common.RateLimitConfig) (*Limiter, *time.Time) {
	l := NewLimiter(cfg, nil)
	clock := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return clock }
	return l, &clock
}

func baseRateConfig() common.RateLimitConfig {
	return common.RateLimitConfig{
		Window:          time.Minute,
		MaxRequests:     10,
		DelayMultiplier: 2.0,
		MaxDelay:        15 * time.Minute,
	}
}

func TestCheckAllowsUpToMax(t *testing.T) {
	l, _ := testLimiter(baseRateConfig())

	for i := 0; i < 10; i++ {
		if d := l.Check("client"); !d.Allowed {
			t.Fatalf("request %d rejected: %+v", i+1, d)
		}
	}

	d := l.Check("client")
	if d.Allowed {
		t.Fatal("request beyond the window limit was allowed")
	}
	if d.Reason != ReasonWindowExceeded {
		t.Errorf("reason = %q, want %q", d.Reason, ReasonWindowExceeded)
	}
	if d.RetryAfter <= 0 {
		t.Errorf("RetryAfter = %v, want positive", d.RetryAfter)
	}
}

func TestCheckWindowSlides(t *testing.T) {
	l, clock := testLimiter(baseRateConfig())

	for i := 0; i < 10; i++ {
		if d := l.Check("client"); !d.Allowed {
			t.Fatalf("request %d rejected", i+1)
		}
	}

	// Once the earlier requests age past the window the client is admitted
	// again without any violation having been recorded.
	*clock = clock.Add(61 * time.Second)
	if d := l.Check("client"); !d.Allowed {
		t.Fatalf("request after window elapsed rejected: %+v", d)
	}
}

func TestProgressiveDelayEscalates(t *testing.T) {
	l, clock := testLimiter(baseRateConfig())

	fill := func() {
		for i := 0; i < 10; i++ {
			if d := l.Check("client"); !d.Allowed {
				t.Fatalf("fill request %d rejected", i+1)
			}
		}
	}

	var delays []time.Duration
	fill()
	for i := 0; i < 4; i++ {
		d := l.Check("client")
		if d.Allowed {
			t.Fatal("violation admitted")
		}
		if d.Reason != ReasonWindowExceeded {
			t.Fatalf("reason = %q, want %q", d.Reason, ReasonWindowExceeded)
		}
		delays = append(delays, d.RetryAfter)

		// Wait out the delay, then trip the limit again. The old requests
		// have aged out, so refill the window first.
		*clock = clock.Add(d.RetryAfter + time.Second)
		fill()
	}

	want := []time.Duration{
		1 * time.Minute, // window × 2^0
		2 * time.Minute,
		4 * time.Minute,
		8 * time.Minute,
	}
	for i := range want {
		if delays[i] != want[i] {
			t.Errorf("violation %d delay = %v, want %v", i+1, delays[i], want[i])
		}
	}
}

func TestProgressiveDelayCapped(t *testing.T) {
	cfg := baseRateConfig()
	cfg.MaxDelay = 3 * time.Minute
	l, _ := testLimiter(cfg)

	if got := l.progressiveDelay(10); got != 3*time.Minute {
		t.Errorf("delay at violation 10 = %v, want the cap", got)
	}
	if got := l.progressiveDelay(1); got != time.Minute {
		t.Errorf("delay at violation 1 = %v, want one window", got)
	}
}

func TestDelayedRequestsDoNotCount(t *testing.T) {
	l, clock := testLimiter(baseRateConfig())

	for i := 0; i < 10; i++ {
		l.Check("client")
	}
	first := l.Check("client")
	if first.Allowed || first.Reason != ReasonWindowExceeded {
		t.Fatalf("expected window rejection, got %+v", first)
	}

	// Hammering during the delay keeps getting the delay reason and a
	// shrinking RetryAfter; it never escalates the violation count.
	*clock = clock.Add(10 * time.Second)
	during := l.Check("client")
	if during.Allowed {
		t.Fatal("request during active delay admitted")
	}
	if during.Reason != ReasonProgressiveDelay {
		t.Errorf("reason = %q, want %q", during.Reason, ReasonProgressiveDelay)
	}
	if during.RetryAfter >= first.RetryAfter {
		t.Errorf("RetryAfter did not shrink: %v -> %v", first.RetryAfter, during.RetryAfter)
	}
}

func TestClientsAreIndependent(t *testing.T) {
	l, _ := testLimiter(baseRateConfig())

	for i := 0; i < 10; i++ {
		l.Check("voracious")
	}
	if d := l.Check("voracious"); d.Allowed {
		t.Fatal("expected rejection for the voracious client")
	}
	if d := l.Check("polite"); !d.Allowed {
		t.Fatalf("unrelated client rejected: %+v", d)
	}
}

func TestClientKey(t *testing.T) {
	short := ClientKey("10.0.0.1:443", "curl/8.0")
	if short != "10.0.0.1:443|curl/8.0" {
		t.Errorf("ClientKey = %q", short)
	}

	long := ClientKey("10.0.0.1:443", "a-very-long-user-agent-string-that-keeps-going-and-going")
	if len(long) != len("10.0.0.1:443|")+32 {
		t.Errorf("long user agent not truncated to 32 chars: %q", long)
	}

	if ClientKey("10.0.0.1:443", "curl/8.0") == ClientKey("10.0.0.2:443", "curl/8.0") {
		t.Error("distinct addresses produced the same key")
	}
}
