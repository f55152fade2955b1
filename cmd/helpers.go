package cmd

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/kdarade/portfolio/internal/config"
	"github.com/kdarade/portfolio/internal/content"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `portfolio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// loadProfile reads the content file named by cfg, or the built-in profile.
func loadProfile(cfg *config.Config) (*content.Profile, error) {
	prof, err := content.Load(cfg.Content.File)
	if err != nil {
		return nil, fmt.Errorf("loading content: %w", err)
	}
	return prof, nil
}

// newLogger builds the process logger. --verbose forces debug level.
func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	zcfg := zap.NewProductionConfig()
	if cfg.Development {
		zcfg = zap.NewDevelopmentConfig()
	}

	level, err := zapcore.ParseLevel(string(cfg.Level))
	if err != nil {
		level = zapcore.InfoLevel
	}
	if verbose {
		level = zapcore.DebugLevel
	}
	zcfg.Level = zap.NewAtomicLevelAt(level)

	return zcfg.Build()
}
