package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// DefaultRateLimit is the number of requests per minute allowed per client IP.
const DefaultRateLimit = 10

// RateLimiter limits the routes it is applied to at DefaultRateLimit requests
// per minute per IP address.
func RateLimiter() echo.MiddlewareFunc {
	return RateLimiterPerMinute(DefaultRateLimit)
}

// RateLimiterPerMinute limits requests to perMinute per client IP, with a burst of
// the same size. API callers get a JSON body, everybody else plain text.
func RateLimiterPerMinute(perMinute int) echo.MiddlewareFunc {
	config := middleware.RateLimiterConfig{
		// An in-memory store is enough for a single instance.
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:  rate.Limit(float64(perMinute) / 60),
			Burst: perMinute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			FromContext(c.Request().Context()).Warn("Rate limit exceeded", "ip", identifier, "path", c.Path())
			if wantsJSON(c) {
				return c.JSON(http.StatusTooManyRequests, map[string]any{
					"success": false,
					"message": MsgTooManyRequests,
				})
			}
			return c.String(http.StatusTooManyRequests, MsgTooManyRequests)
		},
	}
	return middleware.RateLimiterWithConfig(config)
}

// MsgTooManyRequests is returned when a client exceeds its rate limit.
const MsgTooManyRequests = "طلبات كثيرة جداً، يرجى المحاولة لاحقاً"

func wantsJSON(c echo.Context) bool {
	p := c.Request().URL.Path
	return len(p) >= 4 && p[:4] == "/api"
}
