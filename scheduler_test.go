package main

import (
	"testing"

	"github.com/Miuzarte/GoFpsMeter/sampler"
)

func TestFrameSchedulerDrivesSampler(t *testing.T) {
	invalidations := 0
	fs := &frameScheduler{invalidate: func() { invalidations++ }}
	var last sampler.Display
	s := sampler.New(fs, sampler.SinkFunc(func(d sampler.Display) { last = d }),
		sampler.Options{RecomputeFrames: 3, Clock: func() int64 { return 0 }})

	s.Start()
	if invalidations != 1 {
		t.Fatalf("Start outside a frame should invalidate once, got %d", invalidations)
	}
	for _, ts := range []int64{0, 16_666_667, 33_333_333} {
		if !fs.dispatch(ts) {
			t.Fatalf("sampler did not re-arm at %d", ts)
		}
	}
	if invalidations != 1 {
		t.Fatalf("re-arming inside a frame should not invalidate, got %d", invalidations)
	}
	if last.Level != sampler.LevelGood {
		t.Fatalf("expected good reading, got %+v", last)
	}

	s.Stop()
	if fs.dispatch(50_000_000) {
		t.Fatalf("callback fired after Stop")
	}
	if s.Frames() != 3 {
		t.Fatalf("frame sampled after Stop: %d", s.Frames())
	}
}
