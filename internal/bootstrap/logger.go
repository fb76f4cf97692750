package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/osse101/BossRush_Go/internal/config"
	"github.com/osse101/BossRush_Go/internal/logger"
)

// Setup loads the configuration and installs the default logger for a binary.
// A default text logger is installed first so configuration errors are
// still reported in the usual format.
func Setup(service string) (*config.Config, error) {
	return SetupWithWriter(service, os.Stdout)
}

// SetupWithWriter is Setup with log output sent to w
func SetupWithWriter(service string, w io.Writer) (*config.Config, error) {
	defaults := logger.DefaultConfig()
	defaults.ServiceName = service
	logger.InitLoggerWithWriter(defaults, w)

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadConfig, err)
	}

	initLogger(cfg, service, w)

	slog.Info(LogMsgStarting,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat)

	slog.Debug(LogMsgConfigurationLoaded,
		"api_base_url", cfg.APIBaseURL,
		"battle_log", cfg.BattleLogPath,
		"teams", len(cfg.Teams),
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName)

	for _, w := range cfg.Warnings() {
		slog.Warn(w)
	}

	return cfg, nil
}

// initLogger initializes the logger from the loaded configuration
func initLogger(cfg *config.Config, service string, w io.Writer) {
	logger.InitLoggerWithWriter(logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		service,
		cfg.Version,
		cfg.Environment,
		cfg.AddSource(),
	), w)
}
