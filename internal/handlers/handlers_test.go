package handlers_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/nfrund/portview/internal/handlers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidator(t *testing.T) {
	type request struct {
		ID   string `form:"id" validate:"required"`
		Name string
	}
	v := handlers.NewValidator()

	assert.NoError(t, v.Validate(&request{ID: "1"}))

	err := v.Validate(&request{Name: "only a name"})
	require.Error(t, err)
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	assert.Equal(t, "id", verrs[0].Field(), "fields are named after their form tag")
}

func TestHealthGet(t *testing.T) {
	e := echo.New()
	e.GET("/health", handlers.HealthGet)

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}
