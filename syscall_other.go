//go:build !windows

package main

import (
	"image"

	"gioui.org/app"
)

func onViewEvent(app.ViewEvent) {}

// placeOverlay is only implemented for Win32 windows; elsewhere the window
// manager decides where the overlay goes.
func placeOverlay(image.Point) bool {
	if cfg.Overlay.ClickThrough || cfg.Overlay.ExcludeFromCapture {
		log.Info().Msg("click-through and capture exclusion are only supported on windows")
	}
	return true
}
