package match

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Entry is one known ingredient in the cached name list.
type Entry struct {
	ID   uuid.UUID
	Name string
}

// Lister supplies the full ingredient list for cache refreshes.
type Lister interface {
	ListIngredients(ctx context.Context) ([]Entry, error)
}

// snapshot is an immutable view swapped wholesale on refresh. Readers never
// observe a partially-updated list.
type snapshot struct {
	entries []Entry
	names   []string
}

// NameCache holds the periodically-refreshed ingredient name list. Reads are
// lock-free; refresh replaces the whole snapshot via atomic pointer swap.
type NameCache struct {
	lister   Lister
	interval time.Duration
	logger   *slog.Logger

	snap atomic.Pointer[snapshot]
}

func NewNameCache(lister Lister, interval time.Duration, logger *slog.Logger) *NameCache {
	if logger == nil {
		logger = slog.Default()
	}
	if interval <= 0 {
		interval = time.Hour
	}
	c := &NameCache{lister: lister, interval: interval, logger: logger}
	c.snap.Store(&snapshot{})
	return c
}

// Refresh loads the ingredient list and swaps the snapshot. On error the
// previous snapshot stays in place.
func (c *NameCache) Refresh(ctx context.Context) error {
	entries, err := c.lister.ListIngredients(ctx)
	if err != nil {
		c.logger.Warn("name cache refresh failed, keeping previous snapshot", "error", err)
		return err
	}
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	c.snap.Store(&snapshot{entries: entries, names: names})
	c.logger.Info("name cache refreshed", "ingredients", len(entries))
	return nil
}

// Run refreshes on the configured interval until ctx is cancelled. Call in a
// goroutine after an initial Refresh.
func (c *NameCache) Run(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			_ = c.Refresh(ctx)
		}
	}
}

// Entries returns the current snapshot's ingredient list. Callers must not
// mutate it.
func (c *NameCache) Entries() []Entry {
	return c.snap.Load().entries
}

// Names returns the current snapshot's name list. Callers must not mutate it.
func (c *NameCache) Names() []string {
	return c.snap.Load().names
}
