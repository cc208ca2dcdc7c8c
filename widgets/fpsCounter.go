package widgets

import (
	"image/color"
	"math"
	"sync/atomic"

	"gioui.org/font"
	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/Miuzarte/GoFpsMeter/sampler"
)

// FpsLabel is the overlay's display sink. Show may be called from any
// goroutine; Layout draws whatever was shown last.
type FpsLabel struct {
	display  atomic.Pointer[sampler.Display]
	textSize atomic.Uint32
	extra    atomic.Pointer[string]

	Colors     map[sampler.Level]color.NRGBA
	Invalidate func()
}

func NewFpsLabel(size unit.Sp, colors map[sampler.Level]color.NRGBA, invalidate func()) *FpsLabel {
	f := &FpsLabel{Colors: colors, Invalidate: invalidate}
	f.SetTextSize(size)
	f.display.Store(&sampler.Display{Text: "FPS: --", Level: sampler.LevelIdle})
	return f
}

func (f *FpsLabel) Show(d sampler.Display) {
	f.display.Store(&d)
	if f.Invalidate != nil {
		f.Invalidate()
	}
}

func (f *FpsLabel) Display() sampler.Display {
	return *f.display.Load()
}

func (f *FpsLabel) SetTextSize(size unit.Sp) {
	f.textSize.Store(math.Float32bits(float32(size)))
}

func (f *FpsLabel) TextSize() unit.Sp {
	return unit.Sp(math.Float32frombits(f.textSize.Load()))
}

// SetExtra sets a second, uncoloured line. Empty hides it.
func (f *FpsLabel) SetExtra(s string) {
	f.extra.Store(&s)
}

func (f *FpsLabel) Color(l sampler.Level) color.NRGBA {
	if c, ok := f.Colors[l]; ok {
		return c
	}
	return Theme.Fg
}

func (f *FpsLabel) Layout(gtx layout.Context) layout.Dimensions {
	d := f.Display()
	size := f.TextSize()

	lines := []layout.FlexChild{
		layout.Rigid(Label(size, d.Text).Weight(font.Bold).Colored(f.Color(d.Level)).Layout),
	}
	if extra := f.extra.Load(); extra != nil && *extra != "" {
		lines = append(lines, layout.Rigid(Label(size*0.8, *extra).Colored(Theme.Fg).Layout))
	}

	return NewBox().Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Flex{Axis: layout.Vertical}.Layout(gtx, lines...)
	})
}
