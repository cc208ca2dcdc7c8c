// Package sampler turns per-refresh frame timestamps into a smoothed FPS
// reading and publishes it to a display sink.
//
// A Sampler is driven by a single goroutine: the one its Scheduler dispatches
// callbacks on. Start, Stop and OnFrame must all be called from it.
package sampler

import (
	"sync/atomic"
	"time"

	"github.com/Miuzarte/GoFpsMeter/fps"
	"github.com/Miuzarte/GoFpsMeter/logging"
)

var log = logging.New("sampler")

var epoch = time.Now()

// Nanos converts t into the monotonic nanosecond timebase used by Monotonic.
func Nanos(t time.Time) int64 {
	return int64(t.Sub(epoch))
}

func Monotonic() int64 {
	return Nanos(time.Now())
}

// Scheduler registers single-shot frame callbacks.
type Scheduler interface {
	// Post arranges for cb to be called once before the next refresh.
	Post(cb func(timestampNanos int64))
	// Remove drops the pending callback, if any.
	Remove()
}

type Sink interface {
	Show(Display)
}

type SinkFunc func(Display)

func (f SinkFunc) Show(d Display) { f(d) }

type Options struct {
	Capacity          int
	RecomputeFrames   int
	RecomputeInterval time.Duration
	MaxFPS            float64
	Thresholds        Thresholds

	// Clock reports the current time in the scheduler's timebase.
	Clock func() int64
}

func DefaultOptions() Options {
	return Options{
		Capacity:          fps.DefaultCapacity,
		RecomputeFrames:   30,
		RecomputeInterval: time.Second,
		MaxFPS:            fps.DefaultMax,
		Thresholds:        DefaultThresholds,
		Clock:             Monotonic,
	}
}

func (o Options) normalize() Options {
	def := DefaultOptions()
	if o.Capacity < 2 {
		o.Capacity = def.Capacity
	}
	if o.RecomputeFrames <= 0 {
		o.RecomputeFrames = def.RecomputeFrames
	}
	if o.RecomputeInterval <= 0 {
		o.RecomputeInterval = def.RecomputeInterval
	}
	if o.MaxFPS <= 0 {
		o.MaxFPS = def.MaxFPS
	}
	if o.Thresholds == (Thresholds{}) {
		o.Thresholds = def.Thresholds
	}
	if o.Clock == nil {
		o.Clock = def.Clock
	}
	return o
}

type Sampler struct {
	sched Scheduler
	sink  Sink

	opts       Options
	next       atomic.Pointer[Options]
	thresholds atomic.Pointer[Thresholds]

	window      *fps.Window
	active      bool
	frames      int
	lastCompute int64
	reading     float64
	state       Level
}

func New(sched Scheduler, sink Sink, opts Options) *Sampler {
	opts = opts.normalize()
	s := &Sampler{
		sched:  sched,
		sink:   sink,
		opts:   opts,
		window: fps.NewWindow(opts.Capacity),
		state:  LevelStopped,
	}
	s.thresholds.Store(&opts.Thresholds)
	return s
}

// Configure replaces the options used from the next Start on.
// Thresholds take effect immediately.
func (s *Sampler) Configure(opts Options) {
	opts = opts.normalize()
	s.next.Store(&opts)
	s.SetThresholds(opts.Thresholds)
}

// SetThresholds may be called from any goroutine.
func (s *Sampler) SetThresholds(t Thresholds) {
	s.thresholds.Store(&t)
}

func (s *Sampler) Start() {
	if s.active {
		return
	}
	if s.sched == nil || s.sink == nil {
		log.Error().
			Bool("scheduler", s.sched != nil).
			Bool("sink", s.sink != nil).
			Msg("sampler cannot start without a scheduler and a sink")
		s.state = LevelError
		if s.sink != nil {
			s.publish(displayError)
		}
		return
	}

	if next := s.next.Swap(nil); next != nil {
		if next.Capacity != s.window.Cap() {
			s.window = fps.NewWindow(next.Capacity)
		}
		s.opts = *next
	}

	s.window.Reset()
	s.frames = 0
	s.reading = 0
	s.lastCompute = s.opts.Clock()
	s.active = true
	s.publish(displayIdle)
	s.sched.Post(s.OnFrame)
	log.Debug().Int("window", s.window.Cap()).Msg("sampler started")
}

func (s *Sampler) Stop() {
	if !s.active {
		return
	}
	s.active = false
	s.sched.Remove()
	s.window.Reset()
	s.reading = 0
	s.publish(displayStopped)
	log.Debug().Int("frames", s.frames).Msg("sampler stopped")
}

// OnFrame records one refresh. It is the callback handed to the Scheduler.
func (s *Sampler) OnFrame(timestampNanos int64) {
	if !s.active {
		return
	}
	s.sample(timestampNanos)
	if s.active {
		s.sched.Post(s.OnFrame)
	}
}

func (s *Sampler) sample(ts int64) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Int64("ts", ts).Msg("frame sampling failed")
			s.publish(displayError)
		}
	}()

	err := s.window.Push(ts)
	if err != nil {
		log.Warn().Err(err).
			Int64("ts", ts).
			Int64("newest", s.window.Newest()).
			Msg("frame dropped")
		s.publish(displayError)
		return
	}
	s.frames++

	if s.frames%s.opts.RecomputeFrames == 0 ||
		ts-s.lastCompute >= int64(s.opts.RecomputeInterval) {
		s.compute()
		s.lastCompute = ts
	}
}

func (s *Sampler) compute() {
	reading, ok := s.window.Reading(s.opts.MaxFPS)
	if ok {
		s.reading = reading
	}
	s.publish(s.thresholds.Load().Display(s.reading))
}

func (s *Sampler) publish(d Display) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("text", d.Text).Msg("display sink failed")
			s.state = LevelError
		}
	}()
	s.state = d.Level
	s.sink.Show(d)
}

func (s *Sampler) Active() bool     { return s.active }
func (s *Sampler) Reading() float64 { return s.reading }
func (s *Sampler) Frames() int      { return s.frames }
func (s *Sampler) State() Level     { return s.state }

// Window returns a copy of the current samples, oldest first.
func (s *Sampler) Window() []int64 {
	return s.window.Samples(make([]int64, 0, s.window.Len()))
}
