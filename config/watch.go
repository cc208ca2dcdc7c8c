package config

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/Miuzarte/GoFpsMeter/logging"
)

var log = logging.New("config")

// settle gives editors time to finish writing before the file is re-read.
const settle = 100 * time.Millisecond

// Watch reloads path whenever it is written, created or renamed into place and
// hands the validated result to onChange. It blocks until ctx is done.
// The parent directory is watched so that atomic saves are seen.
func Watch(ctx context.Context, path string, onChange func(*Config)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %q: %w", filepath.Dir(abs), err)
	}
	log.Debug().Str("path", abs).Msg("watching config")

	var reload <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			log.Trace().Stringer("op", event.Op).Str("name", event.Name).Msg("fs event")
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				reload = time.After(settle)
			}

		case <-reload:
			reload = nil
			cfg, err := Load(abs)
			if err != nil {
				log.Warn().Err(err).Msg("config reload failed, keeping current settings")
				continue
			}
			log.Info().Str("path", abs).Msg("config reloaded")
			onChange(cfg)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Error().Err(err).Msg("fsnotify error")
		}
	}
}
