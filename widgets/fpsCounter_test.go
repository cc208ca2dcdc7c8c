package widgets

import (
	"image/color"
	"sync"
	"testing"

	"github.com/Miuzarte/GoFpsMeter/sampler"
)

func TestFpsLabelShow(t *testing.T) {
	green := color.NRGBA{G: 0xFF, A: 0xFF}
	invalidated := 0
	f := NewFpsLabel(14, map[sampler.Level]color.NRGBA{sampler.LevelGood: green}, func() { invalidated++ })

	if d := f.Display(); d.Level != sampler.LevelIdle || d.Text != "FPS: --" {
		t.Fatalf("unexpected initial display %+v", d)
	}

	f.Show(sampler.Display{Text: "FPS: 60.0", Level: sampler.LevelGood, FPS: 60})
	if d := f.Display(); d.Text != "FPS: 60.0" {
		t.Fatalf("display not stored: %+v", d)
	}
	if invalidated != 1 {
		t.Fatalf("expected one invalidation, got %d", invalidated)
	}
	if f.Color(sampler.LevelGood) != green {
		t.Fatalf("unexpected colour for good")
	}
	if f.Color(sampler.LevelPoor) != Theme.Fg {
		t.Fatalf("unmapped level should fall back to theme foreground")
	}
}

func TestFpsLabelConcurrentShow(t *testing.T) {
	f := NewFpsLabel(14, nil, nil)
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Go(func() {
			f.Show(sampler.Display{FPS: float64(i)})
			f.SetTextSize(12)
			_ = f.Display()
		})
	}
	wg.Wait()
	if f.TextSize() != 12 {
		t.Fatalf("text size = %v", f.TextSize())
	}
}
