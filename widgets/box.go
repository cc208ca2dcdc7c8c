package widgets

import (
	"image"
	"image/color"

	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
)

// Box draws an optional rounded background and border behind its content.
type Box struct {
	Radius                       int
	Thickness                    float32
	Inset                        layout.Inset
	BorderColor, BackgroundColor color.NRGBA
	Border, Background           bool
}

// NewBox returns the overlay's translucent black panel.
func NewBox() Box {
	return Box{
		Radius:          4,
		Thickness:       1,
		Inset:           layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4), Left: unit.Dp(8), Right: unit.Dp(8)},
		BorderColor:     Theme.ContrastBg,
		BackgroundColor: color.NRGBA{A: 0x80},
		Border:          false,
		Background:      true,
	}
}

func (b Box) Layout(gtx layout.Context, widget layout.Widget) layout.Dimensions {
	b.Thickness = max(b.Thickness, 1)

	// record the content first, the panel is sized after it
	macro := op.Record(gtx.Ops)
	gtx2 := gtx
	gtx2.Constraints.Min = image.Point{}
	dims := b.Inset.Layout(gtx2, widget)
	call := macro.Stop()

	rect := clip.RRect{
		SE: b.Radius, SW: b.Radius,
		NW: b.Radius, NE: b.Radius,
		Rect: image.Rectangle{Max: dims.Size},
	}
	if b.Background {
		paint.FillShape(gtx.Ops, b.BackgroundColor, rect.Op(gtx.Ops))
	}
	if b.Border {
		paint.FillShape(gtx.Ops, b.BorderColor, clip.Stroke{
			Path:  rect.Path(gtx.Ops),
			Width: b.Thickness,
		}.Op())
	}
	call.Add(gtx.Ops)
	return dims
}
