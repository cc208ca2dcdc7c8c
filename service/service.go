// Package service tracks whether the meter is running. State is passed in and
// returned explicitly rather than held in a global flag.
package service

import "github.com/Miuzarte/GoFpsMeter/logging"

var log = logging.New("service")

const (
	StatusReady   = "Ready to start FPS monitoring"
	StatusRunning = "FPS Meter is running"
	StatusStopped = "FPS Meter stopped"
)

// Monitor is started once per visible overlay and stopped before teardown.
type Monitor interface {
	Start()
	Stop()
}

type State struct {
	Running bool
	Status  string
}

func Ready() State {
	return State{Status: StatusReady}
}

func Start(st State, m Monitor) State {
	if st.Running {
		return st
	}
	m.Start()
	log.Info().Msg(StatusRunning)
	return State{Running: true, Status: StatusRunning}
}

func Stop(st State, m Monitor) State {
	if !st.Running {
		return st
	}
	m.Stop()
	log.Info().Msg(StatusStopped)
	return State{Running: false, Status: StatusStopped}
}

func Toggle(st State, m Monitor) State {
	if st.Running {
		return Stop(st, m)
	}
	return Start(st, m)
}
