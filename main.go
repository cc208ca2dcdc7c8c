package main

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"
	"sync/atomic"
	"syscall"
	"time"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/unit"

	"github.com/shirou/gopsutil/v4/process"

	"github.com/Miuzarte/GoFpsMeter/config"
	"github.com/Miuzarte/GoFpsMeter/contextWaitGroup"
	"github.com/Miuzarte/GoFpsMeter/logging"
	"github.com/Miuzarte/GoFpsMeter/record"
	"github.com/Miuzarte/GoFpsMeter/sampler"
	"github.com/Miuzarte/GoFpsMeter/service"
	"github.com/Miuzarte/GoFpsMeter/widgets"
)

const windowTitle = "FPS Meter"

var log = logging.New("meter")

var (
	configPath = flag.String("config", "fpsmeter.yaml", "path to the YAML config (missing file = defaults)")
	logLevel   = flag.String("log-level", "", "log level, overrides the config (trace, debug, info, warn, error)")
	recordPath = flag.String("record", "", "append readings to this CSV file, overrides the config")
	noWatch    = flag.Bool("no-watch", false, "do not reload the config when it changes")
)

var (
	cfg *config.Config

	frames  = &frameScheduler{invalidate: window.Invalidate}
	meter   *sampler.Sampler
	queue   *sampler.Queue
	rec     *record.Recorder
	running = service.Ready()

	showCpu atomic.Bool
	cpu     atomic.Uint64 // math.Float64bits of the CPU percent

	cwg *contextWaitGroup.CWG
)

func main() {
	flag.Parse()

	var err error
	cfg, err = config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Msg("using default config")
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *recordPath != "" {
		cfg.Record.Path = *recordPath
	}
	if err := logging.SetLevel(cfg.Log.Level); err != nil {
		log.Warn().Err(err).Str("level", cfg.Log.Level).Msg("invalid log level")
	}

	setup()

	cwg = contextWaitGroup.New(context.Background())
	cwg.WithSignal(os.Interrupt, syscall.SIGTERM)

	cwg.GoCancel(windowLoop)
	cwg.Go(cpuMeasureLoop)
	cwg.Go(func(ctx context.Context) {
		<-ctx.Done()
		// wake the window loop so it can notice the cancellation
		window.Invalidate()
	})
	if !*noWatch {
		cwg.Go(configWatchLoop)
	}

	go func() {
		cwg.Wait()
		teardown()
		os.Exit(0)
	}()
	app.Main()
}

func setup() {
	window.Option(windowOptions(cfg.Overlay.Width, cfg.Overlay.Height)...)

	fpsLabel = widgets.NewFpsLabel(0, levelColors, window.Invalidate)
	showCpu.Store(cfg.Overlay.ShowCPU)
	applyOverlayConfig(cfg)

	var sink sampler.Sink = fpsLabel
	if cfg.Record.Path != "" {
		var err error
		rec, err = record.Open(cfg.Record.Path)
		if err != nil {
			log.Error().Err(err).Msg("recording disabled")
		} else {
			log.Info().Str("path", cfg.Record.Path).Msg("recording readings")
			sink = sampler.Tee{fpsLabel, rec}
		}
	}
	queue = sampler.NewQueue(sink)
	meter = sampler.New(frames, queue, samplerOptions(cfg))
}

func teardown() {
	queue.Close()
	if rec != nil {
		if err := rec.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close record file")
		}
	}
}

func samplerOptions(cfg *config.Config) sampler.Options {
	return sampler.Options{
		Capacity:          cfg.Sampler.Window,
		RecomputeFrames:   cfg.Sampler.RecomputeFrames,
		RecomputeInterval: cfg.Sampler.RecomputeInterval,
		MaxFPS:            cfg.Sampler.MaxFPS,
		Thresholds: sampler.Thresholds{
			Good:    cfg.Sampler.GoodFPS,
			Warning: cfg.Sampler.WarningFPS,
		},
	}
}

// applyOverlayConfig applies the settings that take effect without a restart.
func applyOverlayConfig(c *config.Config) {
	fpsLabel.SetTextSize(unit.Sp(c.Overlay.TextSize))
	showCpu.Store(c.Overlay.ShowCPU)
	updateCpuLine()
}

func windowLoop(ctx context.Context) {
	// the meter is visible as soon as the window is
	running = service.Start(running, meter)
	defer func() {
		// stop before teardown so no frame callback outlives the window
		running = service.Stop(running, meter)
	}()

	var ops op.Ops
	placed := false
	closing := false
	for {
		if !closing && ctx.Err() != nil {
			// keep consuming events until the window reports destruction
			closing = true
			window.Perform(system.ActionClose)
		}

		switch e := window.Event().(type) {
		case app.DestroyEvent:
			if e.Err != nil {
				log.Error().Err(e.Err).Msg("window error")
			} else {
				log.Debug().Msg("window closed normally")
			}
			return

		case app.ViewEvent:
			onViewEvent(e)

		case app.FrameEvent:
			gtx := app.NewContext(&ops, e)

			err := shortcuts.Match(gtx)
			if err != nil {
				log.Warn().Err(err).Msg("shortcuts match error")
			}

			if frames.dispatch(sampler.Nanos(e.Now)) {
				gtx.Execute(op.InvalidateCmd{})
			}
			layoutOverlay(gtx)
			e.Frame(gtx.Ops)

			if !placed {
				placed = placeOverlay(e.Size)
			}

		default:
			log.Trace().Str("type", fmt.Sprintf("%T", e)).Msg("window event")
		}
	}
}

func cpuMeasureLoop(ctx context.Context) {
	const interval = time.Second

	self, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	if err != nil {
		log.Warn().Err(err).Msg("cpu line unavailable")
		return
	}

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		if !showCpu.Load() {
			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
			continue
		}
		percent, err := self.PercentWithContext(ctx, interval)
		if err != nil {
			log.Debug().Err(err).Msg("cpu sample failed")
			select {
			case <-ctx.Done():
				return
			case <-time.After(interval):
			}
			continue
		}
		cpu.Store(math.Float64bits(percent))
		updateCpuLine()
	}
}

func configWatchLoop(ctx context.Context) {
	err := config.Watch(ctx, *configPath, func(c *config.Config) {
		if *logLevel == "" {
			if err := logging.SetLevel(c.Log.Level); err != nil {
				log.Warn().Err(err).Msg("invalid log level")
			}
		}
		meter.Configure(samplerOptions(c))
		applyOverlayConfig(c)
		window.Invalidate()
	})
	if err != nil {
		log.Warn().Err(err).Msg("config hot reload disabled")
	}
}

func updateCpuLine() {
	if !showCpu.Load() {
		fpsLabel.SetExtra("")
		return
	}
	fpsLabel.SetExtra(fmt.Sprintf("CPU: %.1f%%", math.Float64frombits(cpu.Load())))
}
