package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/nfrund/portview/internal/app"
	"github.com/nfrund/portview/internal/config"
	"github.com/nfrund/portview/internal/handlers"
	"github.com/nfrund/portview/internal/middleware"
	"github.com/nfrund/portview/internal/module"
	"github.com/nfrund/portview/internal/rendering"
	"github.com/nfrund/portview/web"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
)

// Server holds the dependencies for the HTTP server.
type Server struct {
	E        *echo.Echo
	Cfg      *config.Config
	Injector *do.RootScope
	modules  []module.Module
}

// New creates a Server with all modules registered and booted. Dataset files
// named in cfg are read from fs.
func New(cfg *config.Config, fs afero.Fs) (*Server, error) {
	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.RequestID())
	e.Use(middleware.Logger)
	e.Use(echomw.Recover())

	store := sessions.NewCookieStore([]byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   !cfg.IsDevelopment(),
	}
	e.Use(session.Middleware(store))

	injector := app.NewInjector(cfg, fs)
	e.Renderer = do.MustInvoke[rendering.Renderer](injector)
	e.Validator = handlers.NewValidator()
	setupErrorHandling(e)

	e.StaticFS("/static", web.Static())
	e.StaticFS("/logos", web.Logos())
	e.GET("/health", handlers.HealthGet)

	s := &Server{
		E:        e,
		Cfg:      cfg,
		Injector: injector,
		modules:  app.NewModules(),
	}
	if err := s.bootModules(context.Background()); err != nil {
		return nil, err
	}
	return s, nil
}

// bootModules runs the register phase for every module, then the boot phase.
func (s *Server) bootModules(ctx context.Context) error {
	for _, m := range s.modules {
		if err := m.Register(s.Injector); err != nil {
			return fmt.Errorf("failed to register module %s: %w", m.Name(), err)
		}
	}

	root := s.E.Group("")
	for _, m := range s.modules {
		if err := m.Boot(ctx, root, s.Injector); err != nil {
			return fmt.Errorf("failed to boot module %s: %w", m.Name(), err)
		}
		slog.Debug("Module booted", "module", m.Name())
	}
	return nil
}
