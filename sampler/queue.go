package sampler

import "sync"

// Queue forwards displays to a sink on its own goroutine so that rendering
// never blocks the frame callback. Only the latest pending display is kept.
type Queue struct {
	sink Sink
	slot chan Display
	done chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func NewQueue(sink Sink) *Queue {
	q := &Queue{
		sink: sink,
		slot: make(chan Display, 1),
		done: make(chan struct{}),
	}
	q.wg.Go(q.run)
	return q
}

// Show never blocks. A display still pending is replaced.
func (q *Queue) Show(d Display) {
	for {
		select {
		case q.slot <- d:
			return
		default:
		}
		select {
		case <-q.slot:
		default:
		}
	}
}

func (q *Queue) run() {
	for {
		select {
		case <-q.done:
			select {
			case d := <-q.slot:
				q.show(d)
			default:
			}
			return
		case d := <-q.slot:
			q.show(d)
		}
	}
}

func (q *Queue) show(d Display) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Interface("panic", r).Str("text", d.Text).Msg("queued sink failed")
		}
	}()
	q.sink.Show(d)
}

// Close delivers any pending display and stops the queue goroutine.
func (q *Queue) Close() {
	q.once.Do(func() { close(q.done) })
	q.wg.Wait()
}

// Tee shows each display on every non-nil sink in order.
type Tee []Sink

func (t Tee) Show(d Display) {
	for _, s := range t {
		if s != nil {
			s.Show(d)
		}
	}
}
