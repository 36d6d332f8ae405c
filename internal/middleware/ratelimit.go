package middleware

import (
	"net/http"
	"time"

	"contacts-api/internal/httperr"
	"contacts-api/internal/logger"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// limiterIdleTTL is how long an idle client's bucket is kept.
const limiterIdleTTL = 10 * time.Minute

// RateLimit throttles each client IP with a token bucket of rps/burst.
func RateLimit(rps float64, burst int) echo.MiddlewareFunc {
	store := echomw.NewRateLimiterMemoryStoreWithConfig(echomw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(rps),
		Burst:     burst,
		ExpiresIn: limiterIdleTTL,
	})

	return echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return httperr.New(http.StatusForbidden, "Unable to identify client", err)
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			logger.Warn("rate limit exceeded",
				zap.String("ip", identifier),
				zap.String("method", c.Request().Method),
				zap.String("path", c.Request().URL.Path),
			)
			return httperr.New(http.StatusTooManyRequests, "Too many requests, please try again later", err)
		},
	})
}
