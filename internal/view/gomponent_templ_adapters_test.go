package view_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/nfrund/portview/internal/view"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestComponent(t *testing.T) {
	var b strings.Builder
	err := view.Component(g.P(g.Class("x"))).Render(context.Background(), &b)
	require.NoError(t, err)
	assert.Equal(t, `<p class="x"></p>`, b.String())
}

func TestComponent_PropagatesRenderErrors(t *testing.T) {
	failing := cmp.NodeFunc(func(io.Writer) error { return errors.New("boom") })

	err := view.Component(failing).Render(context.Background(), io.Discard)
	assert.EqualError(t, err, "boom")
}
