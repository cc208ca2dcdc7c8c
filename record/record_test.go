package record

import (
	"bytes"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Miuzarte/GoFpsMeter/sampler"
)

func fixedNow() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

func TestRecorderWritesHeaderOnce(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.now = fixedNow

	r.Show(sampler.Display{Text: "FPS: --", Level: sampler.LevelIdle})
	r.Show(sampler.Display{Text: "FPS: 60.0", Level: sampler.LevelGood, FPS: 60})
	r.Show(sampler.Display{Text: "FPS: 10.0", Level: sampler.LevelPoor, FPS: 10})
	r.Show(sampler.Display{Text: "FPS: error", Level: sampler.LevelError})

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got %d lines:\n%s", len(lines), buf.String())
	}
	if lines[0] != "time,fps,level,text" {
		t.Fatalf("unexpected header %q", lines[0])
	}
	if !strings.Contains(lines[1], ",60,good,FPS: 60.0") {
		t.Fatalf("unexpected row %q", lines[1])
	}
	if !strings.Contains(lines[2], ",10,poor,FPS: 10.0") {
		t.Fatalf("unexpected row %q", lines[2])
	}
}

func TestRecorderStopEndsSession(t *testing.T) {
	var buf bytes.Buffer
	r := New(&buf)
	r.Show(sampler.Display{Level: sampler.LevelGood, FPS: 60})
	r.Show(sampler.Display{Level: sampler.LevelStopped})
	if len(r.session) != 0 {
		t.Fatalf("session not reset on stop: %v", r.session)
	}
}

func TestOpenAppendsWithoutSecondHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fps.csv")
	for range 2 {
		r, err := Open(path)
		if err != nil {
			t.Fatalf("open: %v", err)
		}
		r.Show(sampler.Display{Text: "FPS: 30.0", Level: sampler.LevelWarning, FPS: 30})
		if err := r.Close(); err != nil {
			t.Fatalf("close: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "time,fps,level,text"); n != 1 {
		t.Fatalf("expected one header, found %d:\n%s", n, data)
	}
	if n := strings.Count(string(data), "warning"); n != 2 {
		t.Fatalf("expected 2 rows, found %d", n)
	}
}

func TestSummarize(t *testing.T) {
	if s := Summarize(nil); s.Count != 0 {
		t.Fatalf("empty summary: %+v", s)
	}
	s := Summarize([]float64{60, 30, 60, 90})
	if s.Count != 4 || s.Min != 30 || s.Max != 90 {
		t.Fatalf("unexpected summary %+v", s)
	}
	if math.Abs(s.Mean-60) > 1e-9 {
		t.Fatalf("mean = %f", s.Mean)
	}
	if s.Low1 != 30 {
		t.Fatalf("1%% low = %f", s.Low1)
	}
	if s.StdDev <= 0 {
		t.Fatalf("stddev = %f", s.StdDev)
	}
	if one := Summarize([]float64{42}); one.StdDev != 0 || one.Mean != 42 {
		t.Fatalf("single reading summary %+v", one)
	}
}
