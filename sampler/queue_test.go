package sampler

import (
	"sync"
	"testing"
	"time"
)

func TestQueueDeliversLatest(t *testing.T) {
	var mu sync.Mutex
	var got []Display
	release := make(chan struct{})
	first := true
	q := NewQueue(SinkFunc(func(d Display) {
		mu.Lock()
		block := first
		first = false
		got = append(got, d)
		mu.Unlock()
		if block {
			<-release
		}
	}))

	q.Show(Display{Text: "a"})
	// Wait for "a" to be picked up so the sink is busy.
	deadline := time.Now().Add(time.Second)
	for {
		mu.Lock()
		n := len(got)
		mu.Unlock()
		if n == 1 {
			break
		}
		if time.Now().After(deadline) {
			t.Fatalf("queue never delivered the first display")
		}
		time.Sleep(time.Millisecond)
	}

	q.Show(Display{Text: "b"})
	q.Show(Display{Text: "c"})
	close(release)
	q.Close()

	mu.Lock()
	defer mu.Unlock()
	if len(got) != 2 || got[0].Text != "a" || got[1].Text != "c" {
		t.Fatalf("expected [a c], got %v", got)
	}
}

func TestQueueShowAfterCloseDoesNotBlock(t *testing.T) {
	q := NewQueue(SinkFunc(func(Display) {}))
	q.Close()
	done := make(chan struct{})
	go func() {
		q.Show(Display{Text: "x"})
		q.Show(Display{Text: "y"})
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatalf("Show blocked after Close")
	}
}

func TestTeeSkipsNil(t *testing.T) {
	var a, b recordingSink
	Tee{&a, nil, &b}.Show(Display{Text: "x"})
	if len(a.shown) != 1 || len(b.shown) != 1 {
		t.Fatalf("tee did not fan out: %d %d", len(a.shown), len(b.shown))
	}
}
