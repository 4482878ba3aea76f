package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    zapcore.Level
		wantErr bool
	}{
		{"", zapcore.InfoLevel, false},
		{"DEBUG", zapcore.DebugLevel, false},
		{"warning", zapcore.WarnLevel, false},
		{" error ", zapcore.ErrorLevel, false},
		{"chatty", zapcore.InfoLevel, true},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestNewWritesAtLevel(t *testing.T) {
	var buf bytes.Buffer
	log, level, err := New(Options{Level: "warn", Output: &buf})
	require.NoError(t, err)

	log.Infow("hidden", "keymap", "Window")
	log.Warnw("reload failed", "generation", "g1")
	require.NoError(t, log.Sync())

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "reload failed")
	assert.Contains(t, out, "generation")

	level.SetLevel(zapcore.DebugLevel)
	log.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestNewDevelopment(t *testing.T) {
	var buf bytes.Buffer
	log, _, err := New(Options{Level: "debug", Development: true, Output: &buf})
	require.NoError(t, err)

	log.Debugw("expanded", "keymaps", 26)
	assert.Contains(t, buf.String(), "logging_test.go")
}

func TestNewRejectsBadLevel(t *testing.T) {
	_, _, err := New(Options{Level: "loud"})
	assert.Error(t, err)
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() { Nop().Infow("dropped", "k", 1) })
}
