package workers

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestPool_RunsTask(t *testing.T) {
	pool := NewPool(2)

	ran := false
	if err := pool.Do(context.Background(), func() { ran = true }); err != nil {
		t.Fatalf("Do error: %v", err)
	}
	if !ran {
		t.Fatalf("task did not run")
	}
}

func TestPool_LimitsConcurrency(t *testing.T) {
	pool := NewPool(2)

	var running, peak int32
	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = pool.Do(context.Background(), func() {
				now := atomic.AddInt32(&running, 1)
				for {
					seen := atomic.LoadInt32(&peak)
					if now <= seen || atomic.CompareAndSwapInt32(&peak, seen, now) {
						break
					}
				}
				time.Sleep(10 * time.Millisecond)
				atomic.AddInt32(&running, -1)
			})
		}()
	}
	wg.Wait()

	if got := atomic.LoadInt32(&peak); got > 2 {
		t.Fatalf("peak concurrency = %d, want <= 2", got)
	}
}

func TestPool_ContextCancelledWhileWaiting(t *testing.T) {
	pool := NewPool(1)

	release := make(chan struct{})
	go func() {
		_ = pool.Do(context.Background(), func() { <-release })
	}()
	time.Sleep(5 * time.Millisecond) // let the blocker take the slot

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := pool.Do(ctx, func() { t.Error("task ran despite cancelled context") })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	close(release)
}
