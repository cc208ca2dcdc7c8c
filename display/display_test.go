package display

import (
	"image"
	"testing"
)

func TestLargest(t *testing.T) {
	bounds := []image.Rectangle{
		image.Rect(0, 0, 1920, 1080),
		image.Rect(1920, 0, 1920+2560, 1440),
		image.Rect(-1280, 0, 0, 1024),
	}
	if got := Largest(bounds); got != 1 {
		t.Fatalf("Largest = %d, want 1", got)
	}
	if got := Largest([]image.Rectangle{image.Rect(0, 0, 10, 10), image.Rect(10, 0, 20, 10)}); got != 0 {
		t.Fatalf("ties should keep the first, got %d", got)
	}
}

func TestTopRight(t *testing.T) {
	cases := []struct {
		name   string
		screen image.Rectangle
		size   image.Point
		offset image.Point
		want   image.Point
	}{
		{"primary", image.Rect(0, 0, 1920, 1080), image.Pt(140, 40), image.Pt(100, 100), image.Pt(1680, 100)},
		{"secondary", image.Rect(1920, 0, 4480, 1440), image.Pt(140, 40), image.Pt(0, 0), image.Pt(4340, 0)},
		{"offset too large", image.Rect(0, 0, 300, 200), image.Pt(140, 40), image.Pt(1000, 1000), image.Pt(0, 160)},
		{"window larger than screen", image.Rect(0, 0, 100, 20), image.Pt(140, 40), image.Pt(0, 0), image.Pt(0, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := TopRight(c.screen, c.size, c.offset); got != c.want {
				t.Fatalf("TopRight = %v, want %v", got, c.want)
			}
		})
	}
}
