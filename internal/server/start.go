package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nfrund/portview/internal/pubsub"
	"github.com/samber/do/v2"
)

// Start runs the HTTP server until an interrupt or terminate signal arrives.
func (s *Server) Start() {
	go func() {
		slog.Info("Starting server", "addr", s.Cfg.ServerAddr, "env", s.Cfg.Env)
		if err := s.E.Start(s.Cfg.ServerAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped unexpectedly", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.Shutdown(ctx); err != nil {
		slog.Error("Shutdown finished with errors", "error", err)
	}
}

// Shutdown stops accepting requests, then shuts down modules in reverse boot
// order and closes the message bus.
func (s *Server) Shutdown(ctx context.Context) error {
	var errs []error
	if err := s.E.Shutdown(ctx); err != nil {
		errs = append(errs, err)
	}
	for i := len(s.modules) - 1; i >= 0; i-- {
		if err := s.modules[i].Shutdown(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	if bridge, err := do.Invoke[*pubsub.WatermillBridge](s.Injector); err == nil {
		if err := bridge.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
