package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// RateLimiter limits requests to perSecond per client IP, with a burst of the
// same size. It is applied to the routes that mutate dashboard state.
func RateLimiter(perSecond float64) echo.MiddlewareFunc {
	burst := int(perSecond)
	if burst < 1 {
		burst = 1
	}
	config := middleware.RateLimiterConfig{
		// NewRateLimiterMemoryStoreWithConfig is an in-memory store suitable for single-instance deployments.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(perSecond),
			Burst: burst,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.String(http.StatusTooManyRequests, "Too many requests. Please try again later.")
		},
	}
	return middleware.RateLimiterWithConfig(config)
}
