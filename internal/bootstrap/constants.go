package bootstrap

import "time"

// Service names reported in every log line
const (
	ServiceSimulate = "bossrush-simulate"
	ServiceReport   = "bossrush-report"
	ServiceReset    = "bossrush-reset"
	ServiceSetup    = "bossrush-setup"
	ServiceArena    = "bossrush-arena"
)

// ShutdownTimeout bounds graceful HTTP server shutdown
const ShutdownTimeout = 5 * time.Second

// Log messages
const (
	LogMsgStarting             = "Starting"
	LogMsgConfigurationLoaded  = "Configuration loaded"
	LogMsgShuttingDownServer   = "Shutting down server"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgServerFailed         = "Server failed"
)

// Error messages
const (
	ErrMsgFailedToLoadConfig = "failed to load configuration"
)
