// Package rendering turns templ components and gomponents nodes into HTTP
// responses.
package rendering

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer renders any supported component: a templ.Component or a value with
// a Render(io.Writer) error method such as gomponents.Node. It is installed as
// the echo renderer so handlers can call c.Render; the template name is
// ignored and the component is passed as data.
type Renderer interface {
	echo.Renderer
}

// UniversalRenderer is the Renderer used by the application.
type UniversalRenderer struct{}

var _ Renderer = (*UniversalRenderer)(nil)

// NewUniversalRenderer creates a new UniversalRenderer instance.
func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

// gomponentNode is the structural interface of gomponents.Node.
type gomponentNode interface {
	Render(w io.Writer) error
}

func (r *UniversalRenderer) render(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case gomponentNode:
		return c.Render(w)
	case nil:
		return fmt.Errorf("nil component")
	default:
		return fmt.Errorf("unsupported component type: %T", component)
	}
}

// Render implements echo.Renderer.
func (r *UniversalRenderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.render(c.Request().Context(), data, w)
}
