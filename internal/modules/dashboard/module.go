package dashboard

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/portview/internal/config"
	board "github.com/nfrund/portview/internal/dashboard"
	"github.com/nfrund/portview/internal/middleware"
	"github.com/nfrund/portview/internal/module"
	"github.com/nfrund/portview/internal/topicmgr"
	"github.com/nfrund/portview/internal/workspace"
	"github.com/samber/do/v2"
)

// Module serves the user and portfolio dashboard.
type Module struct {
	module.BaseModule
	handler *Handler
}

// New creates the dashboard module.
func New() *Module {
	return &Module{}
}

func (m *Module) Name() string {
	return "dashboard"
}

// Register adds the dashboard topics to the topic registry.
func (m *Module) Register(i do.Injector) error {
	registry, err := do.Invoke[*topicmgr.Registry](i)
	if err != nil {
		return err
	}
	return board.RegisterTopics(registry)
}

// Boot registers the dashboard routes once. Every route resolves the
// session's dashboard through the workspace middleware.
func (m *Module) Boot(ctx context.Context, group *echo.Group, i do.Injector) error {
	cfg, err := do.Invoke[*config.Config](i)
	if err != nil {
		return err
	}
	manager, err := do.Invoke[*workspace.Manager](i)
	if err != nil {
		return err
	}

	m.handler = NewHandler()
	limit := middleware.RateLimiter(cfg.RateLimit)

	g := group.Group("", workspace.Middleware(manager))
	g.GET("/", m.handler.Page)
	g.POST("/users/:id/select", m.handler.SelectUser, limit)
	g.POST("/stocks/:symbol/view", m.handler.ViewStock, limit)
	g.POST("/users/save", m.handler.SaveUser, limit)
	g.POST("/users/delete", m.handler.DeleteUser, limit)
	return nil
}
