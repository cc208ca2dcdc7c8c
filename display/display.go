// Package display picks the monitor the overlay lives on and where on it.
package display

import (
	"fmt"
	"image"

	"github.com/kbinani/screenshot"

	"github.com/Miuzarte/GoFpsMeter/logging"
)

var log = logging.New("display")

// Bounds returns the bounds of display index, or of the largest active
// display when index is negative.
func Bounds(index int) (image.Rectangle, error) {
	numDisplays := screenshot.NumActiveDisplays()
	if numDisplays <= 0 {
		return image.Rectangle{}, fmt.Errorf("no active display")
	}
	log.Debug().Int("displays", numDisplays).Msg("active displays")

	if index >= numDisplays {
		return image.Rectangle{}, fmt.Errorf("display index [%d] out of bounds: %d", index, numDisplays)
	}
	if index >= 0 {
		return screenshot.GetDisplayBounds(index), nil
	}

	all := make([]image.Rectangle, numDisplays)
	for i := range numDisplays {
		all[i] = screenshot.GetDisplayBounds(i)
	}
	i := Largest(all)
	log.Info().Int("index", i).Int("w", all[i].Dx()).Int("h", all[i].Dy()).Msg("using display")
	return all[i], nil
}

// Largest returns the index of the rectangle with the most pixels, the first
// one on ties.
func Largest(bounds []image.Rectangle) int {
	index, maxRes := 0, -1
	for i, b := range bounds {
		size := b.Size()
		if res := size.X * size.Y; res > maxRes {
			index, maxRes = i, res
		}
	}
	return index
}

// TopRight places a window of size offset from the top-right corner of
// screen, kept fully inside it.
func TopRight(screen image.Rectangle, size, offset image.Point) image.Point {
	pos := image.Pt(screen.Max.X-size.X-offset.X, screen.Min.Y+offset.Y)
	pos.X = min(max(pos.X, screen.Min.X), screen.Max.X-size.X)
	pos.Y = min(max(pos.Y, screen.Min.Y), screen.Max.Y-size.Y)
	pos.X = max(pos.X, screen.Min.X)
	pos.Y = max(pos.Y, screen.Min.Y)
	return pos
}
