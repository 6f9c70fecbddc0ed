package module

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/samber/do/v2"
)

// Module defines the contract for a self-contained application feature.
type Module interface {
	// Name returns a unique identifier for the module.
	Name() string

	// Register is called during start-up to provide the module's services to
	// the injector.
	Register(i do.Injector) error

	// Boot is called after all modules have registered their services. This is
	// the phase for setting up routes and subscriptions.
	Boot(ctx context.Context, router *echo.Group, i do.Injector) error

	// Shutdown is called during graceful application shutdown.
	Shutdown(ctx context.Context) error
}

// BaseModule provides no-op implementations for the optional Module methods.
type BaseModule struct{}

func (m *BaseModule) Register(i do.Injector) error { return nil }
func (m *BaseModule) Boot(ctx context.Context, router *echo.Group, i do.Injector) error {
	return nil
}
func (m *BaseModule) Shutdown(ctx context.Context) error {
	return nil
}
