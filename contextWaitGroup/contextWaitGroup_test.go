package contextWaitGroup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestStopCancelsAndWaits(t *testing.T) {
	c := New(context.Background())
	var finished atomic.Int32
	for range 3 {
		c.Go(func(ctx context.Context) {
			<-ctx.Done()
			finished.Add(1)
		})
	}
	c.Stop()
	if finished.Load() != 3 {
		t.Fatalf("expected 3 goroutines to finish, got %d", finished.Load())
	}
}

func TestGoCancelStopsOthers(t *testing.T) {
	c := New(context.Background())
	c.Go(func(ctx context.Context) { <-ctx.Done() })
	c.GoCancel(func(context.Context) {})

	done := make(chan struct{})
	go func() {
		c.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("GoCancel did not cancel the group")
	}
}
