package logging

import (
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	mu  sync.RWMutex
	out io.Writer = console(os.Stderr)
)

func console(f *os.File) io.Writer {
	return zerolog.ConsoleWriter{
		Out:        f,
		TimeFormat: "15:04:05.000",
		NoColor:    !term.IsTerminal(int(f.Fd())),
	}
}

type writer struct{}

func (writer) Write(p []byte) (int, error) {
	mu.RLock()
	defer mu.RUnlock()
	return out.Write(p)
}

// New returns a logger tagged with module. Loggers created before SetOutput
// follow the new output.
func New(module string) zerolog.Logger {
	return zerolog.New(writer{}).With().Timestamp().Str("module", module).Logger()
}

func SetOutput(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	out = w
}

// SetLevel parses level ("trace" .. "disabled") and applies it globally.
func SetLevel(level string) error {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
	return nil
}
