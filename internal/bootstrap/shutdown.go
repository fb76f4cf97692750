package bootstrap

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/BossRush_Go/internal/server"
)

// SignalContext returns a context cancelled on SIGINT or SIGTERM
func SignalContext(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

// StartServer runs srv in the background. Startup failures are logged.
func StartServer(srv *server.Server) {
	go func() {
		if err := srv.Start(); err != nil {
			slog.Error(LogMsgServerFailed, "error", err)
		}
	}()
}

// GracefulShutdown stops srv, waiting at most ShutdownTimeout for in-flight
// requests
func GracefulShutdown(srv *server.Server) {
	slog.Info(LogMsgShuttingDownServer)

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	if err := srv.Stop(ctx); err != nil {
		slog.Error(LogMsgServerForcedShutdown, "error", err)
	}
}
