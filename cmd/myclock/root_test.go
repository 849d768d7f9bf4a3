package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"myclock/internal/config"
	"myclock/internal/version"
)

func TestVersionCommand(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, version.Full()+"\n", out.String())
}

func TestRootRejectsArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"extra"})

	assert.Error(t, cmd.Execute())
}

func TestNewLoggerFallsBackOnBadLevel(t *testing.T) {
	logger := newLogger(config.LogConfig{Level: "loud"})
	require.NotNil(t, logger)
	defer logger.Close()

	assert.True(t, logger.Core().Enabled(zap.InfoLevel))
	assert.False(t, logger.Core().Enabled(zap.DebugLevel))
}

func TestNewLoggerUsesConfig(t *testing.T) {
	logger := newLogger(config.LogConfig{Level: "debug", Output: []string{"stderr"}})
	require.NotNil(t, logger)
	defer logger.Close()

	assert.True(t, logger.Core().Enabled(zap.DebugLevel))
}
