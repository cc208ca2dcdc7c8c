package service

import "testing"

type countingMonitor struct {
	starts, stops int
}

func (c *countingMonitor) Start() { c.starts++ }
func (c *countingMonitor) Stop()  { c.stops++ }

func TestStartStopOncePerOverlay(t *testing.T) {
	m := &countingMonitor{}
	st := Ready()
	if st.Running || st.Status != StatusReady {
		t.Fatalf("unexpected initial state %+v", st)
	}

	st = Start(st, m)
	st = Start(st, m)
	if m.starts != 1 || !st.Running || st.Status != StatusRunning {
		t.Fatalf("start: %+v starts=%d", st, m.starts)
	}

	st = Stop(st, m)
	st = Stop(st, m)
	if m.stops != 1 || st.Running || st.Status != StatusStopped {
		t.Fatalf("stop: %+v stops=%d", st, m.stops)
	}
}

func TestStopWhenNeverStarted(t *testing.T) {
	m := &countingMonitor{}
	st := Stop(Ready(), m)
	if m.stops != 0 || st.Status != StatusReady {
		t.Fatalf("stop before start should be a no-op: %+v stops=%d", st, m.stops)
	}
}

func TestToggle(t *testing.T) {
	m := &countingMonitor{}
	st := Ready()
	for range 3 {
		st = Toggle(st, m)
	}
	if !st.Running || m.starts != 2 || m.stops != 1 {
		t.Fatalf("toggle: %+v starts=%d stops=%d", st, m.starts, m.stops)
	}
}
