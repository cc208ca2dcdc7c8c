package main

import (
	"image/color"

	"gioui.org/app"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/unit"

	"github.com/Miuzarte/GoFpsMeter/sampler"
	"github.com/Miuzarte/GoFpsMeter/widgets"
)

type rgba struct {
	R, G, B, A uint8
}

var (
	colorWhite  = rgba{0xFF, 0xFF, 0xFF, 0xFF}
	colorGray   = rgba{0xA0, 0xA0, 0xA0, 0xFF}
	colorRed    = rgba{0xFF, 0x00, 0x00, 0xFF}
	colorYellow = rgba{0xFF, 0xFF, 0x00, 0xFF}
	colorGreen  = rgba{0x00, 0xFF, 0x00, 0xFF}
	colorPurple = rgba{0xFF, 0x00, 0xFF, 0xFF}
)

var levelColors = map[sampler.Level]color.NRGBA{
	sampler.LevelIdle:    color.NRGBA(colorWhite),
	sampler.LevelGood:    color.NRGBA(colorGreen),
	sampler.LevelWarning: color.NRGBA(colorYellow),
	sampler.LevelPoor:    color.NRGBA(colorRed),
	sampler.LevelError:   color.NRGBA(colorPurple),
	sampler.LevelStopped: color.NRGBA(colorGray),
}

var window app.Window

var (
	fpsLabel *widgets.FpsLabel

	shortcuts = widgets.NewShortcuts(&window,
		widgets.Shortcut{
			Key: widgets.NewShortcut(0, 0, key.NameSpace),
			F:   shortcutToggleMonitoring,
		},
		widgets.Shortcut{
			Key: widgets.NewShortcut(0, 0, "C"),
			F:   shortcutToggleCpu,
		},
		widgets.Shortcut{
			Key: widgets.NewShortcut(0, 0, "Q", key.NameEscape),
			F:   shortcutQuit,
		},
	)
)

func init() {
	widgets.Theme.Fg = color.NRGBA(colorWhite)
	widgets.Theme.Bg = color.NRGBA{}
	widgets.Theme.ContrastFg = color.NRGBA(colorWhite)
	widgets.Theme.ContrastBg = color.NRGBA(colorGray)
}

func windowOptions(width, height int) []app.Option {
	return []app.Option{
		app.Title(windowTitle),
		app.Size(unit.Dp(width), unit.Dp(height)),
		app.MinSize(unit.Dp(width), unit.Dp(height)),
		app.Decorated(false),
	}
}

func layoutOverlay(gtx layout.Context) layout.Dimensions {
	return fpsLabel.Layout(gtx)
}
