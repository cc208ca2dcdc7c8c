// Package record appends published FPS readings to a CSV file and summarizes
// each monitoring session.
package record

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/gocarina/gocsv"

	"github.com/Miuzarte/GoFpsMeter/logging"
	"github.com/Miuzarte/GoFpsMeter/sampler"
)

var log = logging.New("record")

type Row struct {
	Time  string  `csv:"time"`
	FPS   float64 `csv:"fps"`
	Level string  `csv:"level"`
	Text  string  `csv:"text"`
}

// Recorder is a sampler.Sink. Rows are written only for displays carrying a
// reading. A stopped display ends the session and logs its summary.
type Recorder struct {
	mu            sync.Mutex
	w             io.Writer
	closer        io.Closer
	headerWritten bool
	now           func() time.Time

	session []float64
}

// Open appends to path, writing the header only when the file is empty.
func Open(path string) (*Recorder, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening record file: %w", err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("stat record file: %w", err)
	}
	r := New(f)
	r.closer = f
	r.headerWritten = info.Size() > 0
	return r, nil
}

func New(w io.Writer) *Recorder {
	return &Recorder{w: w, now: time.Now}
}

func (r *Recorder) Show(d sampler.Display) {
	r.mu.Lock()
	defer r.mu.Unlock()

	switch d.Level {
	case sampler.LevelStopped:
		r.endSession()
		return
	case sampler.LevelIdle, sampler.LevelError:
		return
	}

	r.session = append(r.session, d.FPS)
	err := r.write(Row{
		Time:  r.now().Format(time.RFC3339Nano),
		FPS:   d.FPS,
		Level: d.Level.String(),
		Text:  d.Text,
	})
	if err != nil {
		log.Warn().Err(err).Msg("failed to record reading")
	}
}

func (r *Recorder) write(row Row) error {
	rows := []Row{row}
	if !r.headerWritten {
		if err := gocsv.Marshal(rows, r.w); err != nil {
			return fmt.Errorf("writing record: %w", err)
		}
		r.headerWritten = true
		return nil
	}
	if err := gocsv.MarshalWithoutHeaders(rows, r.w); err != nil {
		return fmt.Errorf("writing record: %w", err)
	}
	return nil
}

func (r *Recorder) endSession() {
	if len(r.session) == 0 {
		return
	}
	s := Summarize(r.session)
	log.Info().
		Int("readings", s.Count).
		Float64("mean", s.Mean).
		Float64("stddev", s.StdDev).
		Float64("low_1pct", s.Low1).
		Float64("min", s.Min).
		Float64("max", s.Max).
		Msg("session summary")
	r.session = r.session[:0]
}

// Close ends the current session and closes the file opened by Open.
func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.endSession()
	if r.closer != nil {
		return r.closer.Close()
	}
	return nil
}
