package fps

import (
	"errors"
	"time"
)

const (
	DefaultCapacity = 60
	DefaultMax      = 240.0
)

var ErrOutOfOrder = errors.New("frame timestamp older than newest sample")

// Window is a fixed-capacity ring of frame timestamps in nanoseconds, oldest first.
// It does not allocate after NewWindow.
type Window struct {
	samples []int64
	head    int // index of the oldest sample
	count   int
}

func NewWindow(capacity int) *Window {
	if capacity < 2 {
		capacity = DefaultCapacity
	}
	return &Window{samples: make([]int64, capacity)}
}

// Push appends ts, evicting the oldest sample once the window is full.
func (w *Window) Push(ts int64) error {
	if w.count > 0 && ts < w.Newest() {
		return ErrOutOfOrder
	}

	tail := (w.head + w.count) % len(w.samples)
	w.samples[tail] = ts
	if w.count < len(w.samples) {
		w.count++
	} else {
		w.head = (w.head + 1) % len(w.samples)
	}
	return nil
}

func (w *Window) Reset() {
	w.head = 0
	w.count = 0
}

func (w *Window) Len() int { return w.count }
func (w *Window) Cap() int { return len(w.samples) }

func (w *Window) Oldest() int64 {
	if w.count == 0 {
		return 0
	}
	return w.samples[w.head]
}

func (w *Window) Newest() int64 {
	if w.count == 0 {
		return 0
	}
	return w.samples[(w.head+w.count-1)%len(w.samples)]
}

// Span is the time between the oldest and newest sample.
func (w *Window) Span() time.Duration {
	return time.Duration(w.Newest() - w.Oldest())
}

// Samples copies the window into dst, oldest first.
func (w *Window) Samples(dst []int64) []int64 {
	dst = dst[:0]
	for i := range w.count {
		dst = append(dst, w.samples[(w.head+i)%len(w.samples)])
	}
	return dst
}

// Reading derives the average frame rate over the window, clamped to [0, limit].
// ok is false when the window spans no time and the previous reading should be kept.
func (w *Window) Reading(limit float64) (fps float64, ok bool) {
	if w.count < 2 {
		return 0, true
	}
	span := w.Newest() - w.Oldest()
	if span <= 0 {
		return 0, false
	}
	return Clamp(float64(w.count-1)*float64(time.Second)/float64(span), limit), true
}

func Clamp(fps, limit float64) float64 {
	if limit <= 0 {
		limit = DefaultMax
	}
	return min(max(fps, 0), limit)
}
