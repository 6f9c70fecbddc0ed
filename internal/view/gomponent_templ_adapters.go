package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// Component wraps a gomponents node so it can be placed inside a templ
// layout.
func Component(node gomponents.Node) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return node.Render(w)
	})
}
