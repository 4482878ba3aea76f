package input

import (
	"context"
	"errors"

	"github.com/dshills/bindery/internal/config"
	"github.com/dshills/bindery/internal/config/watcher"
)

// LoadFunc reads the current configuration.
type LoadFunc func() (config.Config, error)

// Watch reloads the engine whenever w reports a change, until ctx is done
// or w is closed. The configuration file and the user keymap directories
// of each loaded generation are added to w. A failed reload is logged and
// the previous generation keeps serving.
func (e *Engine) Watch(ctx context.Context, w *watcher.Watcher, configPath string, load LoadFunc) error {
	e.watchPaths(w, configPath)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-w.Events():
			if !ok {
				return nil
			}
			e.log.Infow("reloading keymaps", "path", ev.Path, "op", ev.Op.String())

			cfg, err := load()
			if err != nil {
				e.metrics.RecordReload(err)
				e.log.Errorw("config reload failed", "path", ev.Path, "error", err)
				continue
			}
			if _, err := e.Load(cfg); err != nil {
				continue
			}
			e.watchPaths(w, configPath)

		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			e.log.Warnw("watcher error", "error", err)
		}
	}
}

func (e *Engine) watchPaths(w *watcher.Watcher, configPath string) {
	paths := make([]string, 0, 4)
	if configPath != "" {
		paths = append(paths, configPath)
	}
	if s := e.current.Load(); s != nil {
		paths = append(paths, s.Paths...)
	}

	for _, p := range paths {
		err := w.Watch(p)
		switch {
		case err == nil:
		case errors.Is(err, watcher.ErrPathNotExist):
			e.log.Debugw("not watching missing path", "path", p)
		default:
			e.log.Warnw("watch failed", "path", p, "error", err)
		}
	}
}
