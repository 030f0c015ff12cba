// Package config reads runtime settings from the environment and builds the
// process logger.
package config

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/sirupsen/logrus"
)

// Config holds the environment-driven settings. Game rules are constants in
// the engine, not configuration.
type Config struct {
	// Seed drives dungeon generation. Zero picks a time-based seed.
	Seed int64 `env:"ROGUECORE_SEED" envDefault:"0"`

	LogLevel  string `env:"ROGUECORE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ROGUECORE_LOG_FORMAT" envDefault:"text"`
	// LogFile is where diagnostics go. Empty discards them, since the
	// terminal belongs to the game.
	LogFile string `env:"ROGUECORE_LOG_FILE"`
}

// Load parses Config from the process environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

// NewLogger builds a logrus logger from cfg. The returned closer releases
// the log file, if one was opened.
func NewLogger(cfg Config) (*logrus.Logger, io.Closer, error) {
	log := logrus.New()

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	if strings.ToLower(cfg.LogFormat) == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
			DisableColors: true,
		})
	}

	if cfg.LogFile == "" {
		log.SetOutput(io.Discard)
		return log, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("opening log file %s: %w", cfg.LogFile, err)
	}
	log.SetOutput(f)
	return log, f, nil
}
