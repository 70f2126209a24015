package async

import (
	"context"
	"log/slog"
	"runtime"
	"time"
)

// Pool bounds concurrent CPU-heavy work (image enhancement, recognition) so
// it never saturates the scheduler serving other requests. Saturation applies
// backpressure: Do blocks until a slot frees or the context is cancelled.
type Pool struct {
	sem    chan struct{}
	logger *slog.Logger
}

func NewPool(workers int, logger *slog.Logger) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Pool{sem: make(chan struct{}, workers), logger: logger}
}

// Do runs fn on the calling goroutine once a worker slot is acquired. The
// slot is held only for the duration of fn.
func (p *Pool) Do(ctx context.Context, name string, fn func() error) error {
	start := time.Now()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case p.sem <- struct{}{}:
	}
	defer func() { <-p.sem }()

	if wait := time.Since(start); wait > 100*time.Millisecond {
		p.logger.Debug("worker pool backpressure", "task", name, "wait_ms", wait.Milliseconds())
	}
	return fn()
}
