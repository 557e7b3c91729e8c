// Package cliconfig loads the shared environment configuration and
// initializes logging for the scum-code command line tools.
//
// All settings are plain SCUM_* environment variables; flags on the
// individual commands take precedence over them.
package cliconfig

import (
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"

	"github.com/kelly-tou/scum-code/adc"
)

// Config holds the environment-driven defaults of the CLI tools.
type Config struct {
	// Board is the default ADC board config name.
	Board string
	// Solver is the default differential mesh solver name.
	Solver string
	// Logger configures the global logrus logger.
	Logger LoggerConfig
}

// LoggerConfig selects the log level and output format.
type LoggerConfig struct {
	Level  string
	Format string
}

// Load reads the CLI configuration from the environment.
func Load() *Config {
	v := viper.New()

	// Defaults
	v.SetDefault("SCUM_BOARD", adc.DefaultBoard)
	v.SetDefault("SCUM_SOLVER", "matrix")
	v.SetDefault("SCUM_LOG_LEVEL", "info")
	v.SetDefault("SCUM_LOG_FORMAT", "text")

	// Env
	v.AutomaticEnv()

	return &Config{
		Board:  v.GetString("SCUM_BOARD"),
		Solver: v.GetString("SCUM_SOLVER"),
		Logger: LoggerConfig{
			Level:  v.GetString("SCUM_LOG_LEVEL"),
			Format: v.GetString("SCUM_LOG_FORMAT"),
		},
	}
}

// InitLogger applies the logger config to the global logrus logger.
// Unknown levels fall back to info.
func InitLogger(cfg *Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
