package workspace

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/portview/internal/dashboard"
)

const (
	sessionName = "portview-session"
	sessionKey  = "workspace_id"
	contextKey  = "workspace"
)

// Middleware attaches the session's dashboard to the echo context, creating
// the session cookie on first contact. It must run after the session middleware.
func Middleware(m *Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sess, err := session.Get(sessionName, c)
			if err != nil {
				// An undecodable cookie (e.g. after a secret rotation) starts a new session.
				slog.Debug("discarding unreadable session", "error", err)
			}
			if sess == nil {
				return echo.NewHTTPError(http.StatusInternalServerError, "session store unavailable")
			}

			id, _ := sess.Values[sessionKey].(string)
			if id == "" {
				id = m.NewID()
				sess.Values[sessionKey] = id
				if err := sess.Save(c.Request(), c.Response()); err != nil {
					return err
				}
			}

			c.Set(contextKey, m.Get(id))
			return next(c)
		}
	}
}

// FromContext returns the dashboard attached by Middleware.
func FromContext(c echo.Context) (*dashboard.Dashboard, bool) {
	d, ok := c.Get(contextKey).(*dashboard.Dashboard)
	return d, ok
}
