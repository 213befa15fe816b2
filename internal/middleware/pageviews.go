package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// PageViewTracker records visited paths for one visitor.
type PageViewTracker interface {
	TrackPageView(visitor, path string)
}

// PageViewTrackerFunc adapts a function to PageViewTracker.
type PageViewTrackerFunc func(visitor, path string)

func (f PageViewTrackerFunc) TrackPageView(visitor, path string) { f(visitor, path) }

// skippedPrefixes are never counted as page views.
var skippedPrefixes = []string{"/api", "/static", "/qrcodes", "/ui", "/service-worker.js", "/favicon"}

// PageViews tracks successful full-page GET requests. htmx fragment requests and
// assets are not page views.
func PageViews(tracker PageViewTracker) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			req := c.Request()
			if err != nil || req.Method != http.MethodGet || req.Header.Get("HX-Request") == "true" {
				return err
			}
			if c.Response().Status >= http.StatusBadRequest {
				return nil
			}
			path := req.URL.Path
			for _, p := range skippedPrefixes {
				if strings.HasPrefix(path, p) {
					return nil
				}
			}
			tracker.TrackPageView(VisitorID(c), path)
			return nil
		}
	}
}
