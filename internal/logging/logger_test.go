package logging

import (
	"context"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLevels(t *testing.T) {
	tests := []struct {
		level string
		want  log.Level
	}{
		{level: "debug", want: log.DebugLevel},
		{level: "info", want: log.InfoLevel},
		{level: "warn", want: log.WarnLevel},
		{level: "warning", want: log.WarnLevel},
		{level: "error", want: log.ErrorLevel},
		{level: "DEBUG", want: log.DebugLevel},
		{level: "nonsense", want: log.InfoLevel},
		{level: "", want: log.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.level).GetLevel())
		})
	}
}

func TestDefaultIsStable(t *testing.T) {
	assert.Same(t, Default(), Default())
}

func TestFromContext(t *testing.T) {
	// Without an attached logger, the default is returned.
	assert.Same(t, Default(), FromContext(context.Background()))
	assert.Same(t, Default(), FromContext(nil)) //nolint:staticcheck // nil handling is part of the contract

	logger := New("debug")
	ctx := WithLogger(context.Background(), logger)
	require.Same(t, logger, FromContext(ctx))
}

func TestWithLoggerNilContext(t *testing.T) {
	logger := New("warn")
	ctx := WithLogger(nil, logger) //nolint:staticcheck // nil handling is part of the contract
	assert.Same(t, logger, FromContext(ctx))
}
