package server

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
)

// NotifyShutdown returns a context canceled on an interrupt or terminate
// signal.
func NotifyShutdown(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
}

func (s *Server) shutdown() error {
	slog.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.E.Shutdown(ctx)
}
