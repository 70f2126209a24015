package async

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPoolBoundsConcurrency(t *testing.T) {
	p := NewPool(2, nil)

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := p.Do(context.Background(), "task", func() error {
				n := atomic.AddInt32(&running, 1)
				for {
					old := atomic.LoadInt32(&peak)
					if n <= old || atomic.CompareAndSwapInt32(&peak, old, n) {
						break
					}
				}
				time.Sleep(20 * time.Millisecond)
				atomic.AddInt32(&running, -1)
				return nil
			})
			if err != nil {
				t.Errorf("Do: %v", err)
			}
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&peak); got > 2 {
		t.Errorf("peak concurrency = %d, want at most 2", got)
	}
}

func TestPoolReturnsTaskError(t *testing.T) {
	p := NewPool(1, nil)
	boom := errors.New("boom")

	if err := p.Do(context.Background(), "task", func() error { return boom }); !errors.Is(err, boom) {
		t.Errorf("error = %v, want %v", err, boom)
	}
}

func TestPoolHonorsCancellation(t *testing.T) {
	p := NewPool(1, nil)

	release := make(chan struct{})
	go func() {
		_ = p.Do(context.Background(), "holder", func() error {
			<-release
			return nil
		})
	}()

	// Wait until the only slot is held.
	deadline := time.After(time.Second)
	for len(p.sem) == 0 {
		select {
		case <-deadline:
			t.Fatal("holder never acquired the slot")
		default:
			time.Sleep(time.Millisecond)
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := p.Do(ctx, "waiter", func() error {
		t.Error("cancelled task ran")
		return nil
	})
	if !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
	close(release)
}
