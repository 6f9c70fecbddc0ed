package rendering_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/portview/internal/rendering"
	"github.com/stretchr/testify/assert"
	cmp "maragu.dev/gomponents"
	g "maragu.dev/gomponents/html"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		component any
		want      string
		wantCode  int
	}{
		{name: "templ component", component: templ.Raw("<p>templ</p>"), want: "<p>templ</p>", wantCode: http.StatusOK},
		{name: "gomponents node", component: g.H1(cmp.Text("hello")), want: "<h1>hello</h1>", wantCode: http.StatusOK},
		{name: "gomponents group", component: cmp.Group{g.P(), g.Span()}, want: "<p></p><span></span>", wantCode: http.StatusOK},
		{name: "nil", component: nil, wantCode: http.StatusInternalServerError},
		{name: "unsupported", component: 42, wantCode: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			e.Renderer = rendering.NewUniversalRenderer()
			e.GET("/", func(c echo.Context) error {
				return c.Render(http.StatusOK, "", tt.component)
			})

			rec := httptest.NewRecorder()
			e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, tt.want, rec.Body.String())
				assert.Contains(t, rec.Header().Get(echo.HeaderContentType), "text/html")
			}
		})
	}
}
