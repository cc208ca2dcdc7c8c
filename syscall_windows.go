//go:build windows

package main

import (
	"image"

	"gioui.org/app"
	"golang.org/x/sys/windows"

	"github.com/Miuzarte/GoFpsMeter/display"
)

const (
	GWL_EXSTYLE = -20

	WS_EX_TRANSPARENT = 0x00000020
	WS_EX_TOOLWINDOW  = 0x00000080
	WS_EX_LAYERED     = 0x00080000
	WS_EX_NOACTIVATE  = 0x08000000

	LWA_ALPHA = 0x00000002

	SWP_NOSIZE     = 0x0001
	SWP_NOACTIVATE = 0x0010
	SWP_SHOWWINDOW = 0x0040

	WDA_NONE               = 0x00000000
	WDA_EXCLUDEFROMCAPTURE = 0x00000011
)

var HWND_TOPMOST = ^uintptr(0) // (HWND)-1

var (
	moduser32                      = windows.NewLazySystemDLL("user32.dll")
	procSetWindowPos               = moduser32.NewProc("SetWindowPos")
	procGetWindowLongPtrW          = moduser32.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = moduser32.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = moduser32.NewProc("SetLayeredWindowAttributes")
	procSetWindowDisplayAffinity   = moduser32.NewProc("SetWindowDisplayAffinity")
)

var windowHandle windows.HWND

func onViewEvent(e app.ViewEvent) {
	v, ok := e.(app.Win32ViewEvent)
	if !ok || v.HWND == 0 {
		windowHandle = 0
		return
	}
	windowHandle = windows.HWND(v.HWND)
	log.Debug().Uint64("hwnd", uint64(windowHandle)).Msg("overlay window created")

	exStyle := uintptr(WS_EX_TOOLWINDOW | WS_EX_NOACTIVATE)
	if cfg.Overlay.ClickThrough {
		exStyle |= WS_EX_LAYERED | WS_EX_TRANSPARENT
	}
	if err := addWindowExStyle(windowHandle, exStyle); err != nil {
		log.Warn().Err(err).Msg("failed to set overlay window style")
	}
	if cfg.Overlay.ClickThrough {
		// a layered window stays invisible until its alpha is set
		if err := SetLayeredWindowAttributes(windowHandle, 0, 0xFF, LWA_ALPHA); err != nil {
			log.Warn().Err(err).Msg("failed to SetLayeredWindowAttributes")
		}
	}

	affinity := uint32(WDA_NONE)
	if cfg.Overlay.ExcludeFromCapture {
		affinity = WDA_EXCLUDEFROMCAPTURE
	}
	if err := SetWindowDisplayAffinity(windowHandle, affinity); err != nil {
		log.Warn().Err(err).Msg("failed to SetWindowDisplayAffinity")
	}
}

// placeOverlay pins the window topmost near the top-right corner of the
// configured display. It reports false while there is no window to place.
func placeOverlay(size image.Point) bool {
	if windowHandle == 0 {
		return false
	}
	screen, err := display.Bounds(cfg.Overlay.Display)
	if err != nil {
		log.Warn().Err(err).Msg("overlay left at its default position")
		return true
	}
	pos := display.TopRight(screen, size, image.Pt(cfg.Overlay.OffsetX, cfg.Overlay.OffsetY))
	if err := SetWindowPos(windowHandle, HWND_TOPMOST, pos, SWP_NOSIZE|SWP_NOACTIVATE|SWP_SHOWWINDOW); err != nil {
		log.Warn().Err(err).Msg("failed to SetWindowPos")
		return true
	}
	log.Debug().Int("x", pos.X).Int("y", pos.Y).Msg("overlay placed")
	return true
}

func addWindowExStyle(hWnd windows.HWND, style uintptr) error {
	index := int32(GWL_EXSTYLE) // sign extended below

	// GetWindowLongPtrW returns 0 both on failure and for an empty style
	curr, _, err := procGetWindowLongPtrW.Call(uintptr(hWnd), uintptr(index))
	if curr == 0 && err != windows.ERROR_SUCCESS {
		return err
	}
	ret, _, err := procSetWindowLongPtrW.Call(uintptr(hWnd), uintptr(index), curr|style)
	if ret == 0 && err != windows.ERROR_SUCCESS {
		return err
	}
	return nil
}

func SetWindowPos(hWnd windows.HWND, insertAfter uintptr, pos image.Point, flags uint32) error {
	ret, _, err := procSetWindowPos.Call(
		uintptr(hWnd),
		insertAfter,
		uintptr(pos.X),
		uintptr(pos.Y),
		0, 0,
		uintptr(flags),
	)
	if ret == 0 {
		return err
	}
	return nil
}

func SetLayeredWindowAttributes(hWnd windows.HWND, key uint32, alpha byte, flags uint32) error {
	ret, _, err := procSetLayeredWindowAttributes.Call(
		uintptr(hWnd),
		uintptr(key),
		uintptr(alpha),
		uintptr(flags),
	)
	if ret == 0 {
		return err
	}
	return nil
}

func SetWindowDisplayAffinity(hWnd windows.HWND, dwAffinity uint32) error {
	ret, _, err := procSetWindowDisplayAffinity.Call(
		uintptr(hWnd),
		uintptr(dwAffinity),
	)
	if ret == 0 {
		return err
	}
	return nil
}
