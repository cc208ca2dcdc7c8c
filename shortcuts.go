package main

import (
	"gioui.org/io/key"

	"github.com/Miuzarte/GoFpsMeter/service"
)

func shortcutToggleMonitoring(key.Name, key.Modifiers) {
	running = service.Toggle(running, meter)
}

func shortcutToggleCpu(key.Name, key.Modifiers) {
	showCpu.Store(!showCpu.Load())
	updateCpuLine()
	log.Info().Bool("show_cpu", showCpu.Load()).Msg("cpu line toggled")
}

func shortcutQuit(key.Name, key.Modifiers) {
	log.Info().Msg("quit requested")
	cwg.Cancel()
}
