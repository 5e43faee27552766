package logger_test

import (
	"bytes"
	"errors"
	"rooming/config"
	"rooming/shared/constant"
	"rooming/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
)

func TestInitLogger(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	logger.InitLogger()

	assert.Equal(t, zerolog.TimeFormatUnix, zerolog.TimeFieldFormat)
	assert.Equal(t, zerolog.TraceLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	original := log.Logger
	defer func() { log.Logger = original }()

	var buf bytes.Buffer
	log.Logger = log.Output(&buf)

	logger.ErrorWithStack(errors.New("failed to insert rooming list"))

	assert.Contains(t, buf.String(), "failed to insert rooming list")
	assert.Contains(t, buf.String(), "logger_test.go", "stack trace is attached")
}

func TestSetLogLevel(t *testing.T) {
	tests := []struct {
		name          string
		logLevel      string
		expectedLevel zerolog.Level
	}{
		{name: "debug", logLevel: "debug", expectedLevel: zerolog.DebugLevel},
		{name: "warn", logLevel: "warn", expectedLevel: zerolog.WarnLevel},
		{name: "unset falls back to trace", logLevel: "", expectedLevel: zerolog.TraceLevel},
		{name: "unknown falls back to trace", logLevel: "verbose", expectedLevel: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			originalLevel := zerolog.GlobalLevel()
			defer zerolog.SetGlobalLevel(originalLevel)

			cfg := &config.Config{}
			cfg.Server.LogLevel = tt.logLevel

			logger.SetLogLevel(cfg)

			assert.Equal(t, tt.expectedLevel, zerolog.GlobalLevel())
		})
	}
}

func TestSetLogLevel_Production(t *testing.T) {
	original := log.Logger
	originalLevel := zerolog.GlobalLevel()

	defer func() {
		log.Logger = original
		zerolog.SetGlobalLevel(originalLevel)
	}()

	cfg := &config.Config{}
	cfg.Server.Env = constant.ServerEnvProduction
	cfg.Server.LogLevel = "info"
	cfg.App.Name = "rooming-list-manager"

	logger.SetLogLevel(cfg)

	var buf bytes.Buffer
	log.Logger = log.Logger.Output(&buf)
	log.Info().Msg("booking linked")

	assert.Contains(t, buf.String(), `"app":"rooming-list-manager"`)
	assert.Contains(t, buf.String(), `"message":"booking linked"`)
}
