package server

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/nfrund/portview/internal/config"
	"github.com/nfrund/portview/internal/rendering"
	"github.com/samber/do/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPErrorHandler_WithStackTrace(t *testing.T) {
	e := echo.New()

	// Capture slog output to inspect it.
	var logBuffer bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logBuffer, &slog.HandlerOptions{AddSource: true}))
	originalLogger := slog.Default()
	slog.SetDefault(logger)
	defer slog.SetDefault(originalLogger)

	setupErrorHandling(e)

	e.GET("/test-unhandled-error", func(c echo.Context) error {
		return errors.New("a deliberate unhandled error occurred")
	})

	req := httptest.NewRequest(http.MethodGet, "/test-unhandled-error", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code, "Expected a 500 Internal Server Error response")

	logOutput := logBuffer.String()
	assert.Contains(t, logOutput, "Internal Server Error (Unhandled)", "Log message should indicate an unhandled error")
	assert.Contains(t, logOutput, "error=\"a deliberate unhandled error occurred\"", "Log should contain the original error message")
	assert.Contains(t, logOutput, "stack_trace=", "Log must contain the stack_trace field")
	assert.Contains(t, logOutput, "runtime/debug/stack.go", "Stack trace should originate from the debug package")
	assert.Contains(t, logOutput, "internal/server/server_test.go", "Stack trace should point back to this test file")
}

func TestHTTPErrorHandler_KeepsHTTPErrorStatus(t *testing.T) {
	var logBuffer bytes.Buffer
	originalLogger := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&logBuffer, nil)))
	defer slog.SetDefault(originalLogger)

	e := echo.New()
	setupErrorHandling(e)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Not Found", rec.Body.String())
	assert.NotContains(t, logBuffer.String(), "stack_trace=", "HTTP errors are expected and must not log a stack trace")
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	cfg := &config.Config{
		Env:                "development",
		ServerAddr:         ":0",
		SessionSecret:      "a-very-secret-key-for-testing-!",
		SessionIdleTimeout: time.Hour,
		RateLimit:          100,
	}
	s, err := New(cfg, afero.NewMemMapFs())
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		assert.NoError(t, s.Shutdown(ctx))
	})
	return s
}

func TestServer_Routes(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name     string
		method   string
		target   string
		wantCode int
		contains string
	}{
		{name: "dashboard page", method: http.MethodGet, target: "/", wantCode: http.StatusOK, contains: "Doe, Jane"},
		{name: "health", method: http.MethodGet, target: "/health", wantCode: http.StatusOK, contains: "OK"},
		{name: "stylesheet", method: http.MethodGet, target: "/static/css/app.css", wantCode: http.StatusOK},
		{name: "logo", method: http.MethodGet, target: "/logos/AAPL.svg", wantCode: http.StatusOK, contains: "<svg"},
		{name: "missing logo", method: http.MethodGet, target: "/logos/NOPE.svg", wantCode: http.StatusNotFound},
		{name: "unknown route", method: http.MethodGet, target: "/nowhere", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			s.E.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
		})
	}
}

func TestServer_RequestIDHeader(t *testing.T) {
	s := newTestServer(t)

	rec := httptest.NewRecorder()
	s.E.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_RendererFromInjector(t *testing.T) {
	s := newTestServer(t)

	r, err := do.Invoke[rendering.Renderer](s.Injector)
	require.NoError(t, err)
	assert.Same(t, r, s.E.Renderer)
}

func TestNew_FailsOnUnreadableDataset(t *testing.T) {
	cfg := &config.Config{
		Env:           "development",
		SessionSecret: "a-very-secret-key-for-testing-!",
		UsersFile:     "/does/not/exist.json",
		RateLimit:     10,
	}

	_, err := New(cfg, afero.NewMemMapFs())
	assert.Error(t, err)
}
