package bootstrap

import (
	"fmt"

	infraconfig "github.com/jonesrussell/north-cloud/content-creator/infrastructure/config"
	infralogger "github.com/jonesrussell/north-cloud/content-creator/infrastructure/logger"
	"github.com/jonesrussell/north-cloud/content-creator/internal/config"
)

// CommandDeps holds the dependencies every command needs.
type CommandDeps struct {
	Config *config.Config
	Logger infralogger.Logger
}

// NewCommandDeps loads and validates the configuration and creates the
// logger. An empty configPath falls back to CONFIG_PATH, then config.yml.
// CLI commands pass toStderr so stdout carries only their output.
func NewCommandDeps(configPath string, toStderr bool) (*CommandDeps, error) {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	log, err := CreateLogger(cfg, toStderr)
	if err != nil {
		return nil, err
	}

	return &CommandDeps{Config: cfg, Logger: log}, nil
}

// LoadConfig loads and validates configuration.
func LoadConfig(configPath string) (*config.Config, error) {
	if configPath == "" {
		configPath = infraconfig.GetConfigPath(config.DefaultPath)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if validationErr := cfg.Validate(); validationErr != nil {
		return nil, fmt.Errorf("validate config: %w", validationErr)
	}
	return cfg, nil
}

// CreateLogger creates a logger instance from configuration.
func CreateLogger(cfg *config.Config, toStderr bool) (infralogger.Logger, error) {
	logCfg := infralogger.Config{
		Level:       cfg.Logging.Level,
		Format:      cfg.Logging.Format,
		Development: cfg.Service.Debug,
	}
	if toStderr {
		logCfg.OutputPaths = []string{"stderr"}
	}

	log, err := infralogger.New(logCfg)
	if err != nil {
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log.With(infralogger.String("service", cfg.Service.Name)), nil
}
