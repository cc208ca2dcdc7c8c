package sampler

import (
	"fmt"
	"strconv"
)

type Level int

const (
	LevelIdle Level = iota
	LevelGood
	LevelWarning
	LevelPoor
	LevelError
	LevelStopped
)

func (l Level) String() string {
	switch l {
	case LevelIdle:
		return "idle"
	case LevelGood:
		return "good"
	case LevelWarning:
		return "warning"
	case LevelPoor:
		return "poor"
	case LevelError:
		return "error"
	case LevelStopped:
		return "stopped"
	default:
		return "unexpected level: " + strconv.Itoa(int(l))
	}
}

// Display is what a Sink renders.
type Display struct {
	Text  string
	Level Level
	FPS   float64
}

var (
	displayIdle    = Display{Text: "FPS: --", Level: LevelIdle}
	displayError   = Display{Text: "FPS: error", Level: LevelError}
	displayStopped = Display{Text: "FPS: stopped", Level: LevelStopped}
)

type Thresholds struct {
	Good    float64
	Warning float64
}

var DefaultThresholds = Thresholds{Good: 55, Warning: 30}

func (t Thresholds) Level(fps float64) Level {
	switch {
	case fps >= t.Good:
		return LevelGood
	case fps >= t.Warning:
		return LevelWarning
	case fps > 0:
		return LevelPoor
	default:
		return LevelIdle
	}
}

func (t Thresholds) Display(fps float64) Display {
	if fps <= 0 {
		return displayIdle
	}
	return Display{
		Text:  fmt.Sprintf("FPS: %.1f", fps),
		Level: t.Level(fps),
		FPS:   fps,
	}
}
