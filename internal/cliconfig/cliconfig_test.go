package cliconfig

import (
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "m2", cfg.Board)
	assert.Equal(t, "matrix", cfg.Solver)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "text", cfg.Logger.Format)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("SCUM_BOARD", "m1")
	t.Setenv("SCUM_SOLVER", "priority")
	t.Setenv("SCUM_LOG_LEVEL", "debug")

	cfg := Load()

	assert.Equal(t, "m1", cfg.Board)
	assert.Equal(t, "priority", cfg.Solver)
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestInitLogger(t *testing.T) {
	InitLogger(&Config{Logger: LoggerConfig{Level: "debug", Format: "json"}})
	assert.Equal(t, log.DebugLevel, log.GetLevel())
	assert.IsType(t, &log.JSONFormatter{}, log.StandardLogger().Formatter)

	InitLogger(&Config{Logger: LoggerConfig{Level: "nonsense", Format: "text"}})
	assert.Equal(t, log.InfoLevel, log.GetLevel())
	assert.IsType(t, &log.TextFormatter{}, log.StandardLogger().Formatter)
}
