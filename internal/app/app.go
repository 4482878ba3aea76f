// Package app wires configuration, logging, the dispatcher and the input
// engine into one process.
package app

import (
	"context"
	"errors"
	"io"
	"sync"

	"go.uber.org/zap"

	"github.com/dshills/bindery/internal/config"
	"github.com/dshills/bindery/internal/config/watcher"
	"github.com/dshills/bindery/internal/dispatcher"
	"github.com/dshills/bindery/internal/input"
	"github.com/dshills/bindery/internal/logging"
)

// Options configures the application.
type Options struct {
	// ConfigPath is the configuration file. Empty uses config.DefaultPath
	// and tolerates a missing file.
	ConfigPath string

	// LogLevel overrides logging.level from the configuration.
	LogLevel string

	// Debug forces debug logging with the development encoder.
	Debug bool

	// LogOutput receives log lines. Defaults to stderr.
	LogOutput io.Writer

	// Env looks up environment overrides. Defaults to the process
	// environment.
	Env func(string) (string, bool)

	// Dispatcher tunes command dispatch. Zero means dispatcher.DefaultConfig.
	Dispatcher *dispatcher.Config
}

// Application holds the wired components.
type Application struct {
	opts Options
	log  *zap.SugaredLogger

	mu     sync.RWMutex
	config config.Config

	level      zap.AtomicLevel
	dispatcher *dispatcher.Dispatcher
	engine     *input.Engine
}

// New loads the configuration, builds the logger and installs the first
// keymap generation.
func New(opts Options) (*Application, error) {
	cfg, err := config.Load(opts.loadOptions())
	if err != nil {
		return nil, err
	}

	logOpts := logging.Options{
		Level:       cfg.Logging.Level,
		Development: cfg.Logging.Development,
		Output:      opts.LogOutput,
	}
	if opts.LogLevel != "" {
		logOpts.Level = opts.LogLevel
	}
	if opts.Debug {
		logOpts.Level = "debug"
		logOpts.Development = true
	}
	log, level, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}

	dcfg := dispatcher.DefaultConfig()
	if opts.Dispatcher != nil {
		dcfg = *opts.Dispatcher
	}
	d := dispatcher.New(dcfg, dispatcher.WithLogger(log.Named("dispatch")))

	a := &Application{
		opts:       opts,
		log:        log,
		config:     cfg,
		level:      level,
		dispatcher: d,
		engine:     input.NewEngine(d, input.WithLogger(log.Named("input"))),
	}
	if _, err := a.engine.Load(cfg); err != nil {
		_ = log.Sync()
		return nil, err
	}
	log.Debugw("application ready", "config", cfg.Source)
	return a, nil
}

func (o Options) loadOptions() config.Options {
	return config.Options{Path: o.ConfigPath, Env: o.Env}
}

// Config returns the configuration of the current generation.
func (a *Application) Config() config.Config {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.config
}

// Logger returns the root logger.
func (a *Application) Logger() *zap.SugaredLogger { return a.log }

// Dispatcher returns the command dispatcher.
func (a *Application) Dispatcher() *dispatcher.Dispatcher { return a.dispatcher }

// Engine returns the input engine.
func (a *Application) Engine() *input.Engine { return a.engine }

// Reload rereads the configuration and rebuilds the keymaps. On error the
// previous configuration and keymaps stay in place.
func (a *Application) Reload() (config.Config, error) {
	cfg, err := a.reloadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if _, err := a.engine.Load(cfg); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// reloadConfig rereads the configuration. The log level follows it unless
// it was fixed by Options.
func (a *Application) reloadConfig() (config.Config, error) {
	cfg, err := config.Load(a.opts.loadOptions())
	if err != nil {
		return config.Config{}, err
	}
	if a.opts.LogLevel == "" && !a.opts.Debug {
		if lvl, err := logging.ParseLevel(cfg.Logging.Level); err == nil {
			a.level.SetLevel(lvl)
		}
	}

	a.mu.Lock()
	a.config = cfg
	a.mu.Unlock()
	return cfg, nil
}

// Watch reloads on changes to the configuration file or keymap
// directories until ctx is done.
func (a *Application) Watch(ctx context.Context, opts ...watcher.Option) error {
	w, err := watcher.New(opts...)
	if err != nil {
		return err
	}
	defer w.Close()

	path := a.Config().Source
	if path == "" {
		path = a.opts.ConfigPath
	}
	if path == "" {
		path = config.DefaultPath()
	}

	err = a.engine.Watch(ctx, w, path, a.reloadConfig)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// Close flushes the logger. Sync errors on terminals are ignored.
func (a *Application) Close() {
	_ = a.log.Sync()
}
