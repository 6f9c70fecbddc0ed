package workspace_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/portview/internal/dataset"
	"github.com/nfrund/portview/internal/domain"
	"github.com/nfrund/portview/internal/workspace"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testData() dataset.Data {
	return dataset.Data{
		Users: []domain.User{
			{ID: "1", Profile: domain.Profile{Firstname: "Jane", Lastname: "Doe"}},
			{ID: "2", Profile: domain.Profile{Firstname: "John", Lastname: "Roe"}},
		},
		Stocks: []domain.Stock{{Symbol: "ACME", Name: "Acme Corp"}},
	}
}

func TestManager_WorkspacesAreIsolated(t *testing.T) {
	data := testData()
	m := workspace.NewManager(data)

	a := m.Get("a")
	b := m.Get("b")
	require.NoError(t, a.Delete(context.Background(), "1"))

	assert.Len(t, a.Users(), 1)
	assert.Len(t, b.Users(), 2, "other sessions keep their own copy")
	assert.Len(t, data.Users, 2, "the start-up dataset is never mutated")
	assert.Same(t, a, m.Get("a"))
	assert.Equal(t, 2, m.Len())
}

func TestManager_IdleEviction(t *testing.T) {
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)
	m := workspace.NewManager(testData(),
		workspace.WithIdleTimeout(time.Hour),
		workspace.WithClock(func() time.Time { return now }))

	first := m.Get("a")
	require.NoError(t, first.Delete(context.Background(), "1"))

	now = now.Add(30 * time.Minute)
	assert.Same(t, first, m.Get("a"), "recent workspaces are kept")

	now = now.Add(2 * time.Hour)
	fresh := m.Get("a")
	assert.NotSame(t, first, fresh, "expired workspaces are rebuilt")
	assert.Len(t, fresh.Users(), 2)
}

func TestManager_SharedCatalog(t *testing.T) {
	m := workspace.NewManager(testData())

	assert.Same(t, m.Get("a").Catalog(), m.Get("b").Catalog(), "workspaces share one catalog")
	assert.NotEqual(t, m.NewID(), m.NewID())
}

func TestMiddleware(t *testing.T) {
	m := workspace.NewManager(testData())
	e := echo.New()
	e.Use(session.Middleware(sessions.NewCookieStore([]byte("a-very-secret-key-for-testing-!"))))
	e.Use(workspace.Middleware(m))
	e.GET("/", func(c echo.Context) error {
		d, ok := workspace.FromContext(c)
		if !ok {
			return c.String(http.StatusInternalServerError, "no workspace")
		}
		return c.String(http.StatusOK, d.Users()[0].Label())
	})

	// First request creates the session.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Doe, Jane", rec.Body.String())
	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, 1, m.Len())

	// Replaying the cookie reuses the same workspace.
	req = httptest.NewRequest(http.MethodGet, "/", nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, m.Len())
}

func TestFromContext_Missing(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	_, ok := workspace.FromContext(c)
	assert.False(t, ok)
}
