// Package logging builds the zap loggers used across bindery.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Options configures New.
type Options struct {
	// Level is debug, info, warn or error. Empty means info.
	Level string

	// Development switches to the development encoder: colored levels,
	// caller locations and stack traces on warnings.
	Development bool

	// Output receives log lines. Defaults to os.Stderr.
	Output io.Writer
}

// ParseLevel converts a level name to a zap level.
func ParseLevel(name string) (zapcore.Level, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "info":
		return zapcore.InfoLevel, nil
	case "debug":
		return zapcore.DebugLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, fmt.Errorf("unknown log level %q", name)
	}
}

// New builds a console logger writing to opts.Output. The returned level
// can be changed later, for example after a configuration reload.
func New(opts Options) (*zap.SugaredLogger, zap.AtomicLevel, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, zap.AtomicLevel{}, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	cfg := zap.NewProductionConfig()
	if opts.Development {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.RFC3339TimeEncoder
	cfg.EncoderConfig.EncodeDuration = zapcore.StringDurationEncoder
	cfg.EncoderConfig.ConsoleSeparator = " "
	cfg.Level = zap.NewAtomicLevelAt(level)

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(cfg.EncoderConfig),
		zapcore.AddSync(out),
		cfg.Level,
	)

	var zopts []zap.Option
	if opts.Development {
		zopts = append(zopts, zap.AddCaller(), zap.Development(), zap.AddStacktrace(zapcore.WarnLevel))
	}
	return zap.New(core, zopts...).Sugar(), cfg.Level, nil
}

// Nop returns a logger that discards everything.
func Nop() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}
