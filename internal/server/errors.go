package server

import (
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/handlers"
	"github.com/nfrund/zawiya/internal/middleware"
)

// setupErrorHandling installs the central error handler. Unhandled errors are
// logged with a stack trace; /api clients get a JSON body and everyone else a
// plain message.
func setupErrorHandling(e *echo.Echo) {
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		message := handlers.MsgServerError
		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			if code < http.StatusInternalServerError {
				message = fmt.Sprint(he.Message)
			}
		}

		logger := middleware.FromContext(c.Request().Context())
		if code >= http.StatusInternalServerError {
			logger.Error("Internal Server Error (Unhandled)",
				"error", err.Error(),
				"path", c.Request().URL.Path,
				"stack_trace", string(debug.Stack()),
			)
		} else {
			logger.Debug("Request failed", "status", code, "error", err)
		}

		var respErr error
		switch {
		case c.Request().Method == http.MethodHead:
			respErr = c.NoContent(code)
		case strings.HasPrefix(c.Request().URL.Path, "/api"):
			respErr = c.JSON(code, handlers.ErrorResponse{Code: http.StatusText(code), Message: message})
		default:
			respErr = c.String(code, message)
		}
		if respErr != nil {
			logger.Error("Failed to write error response", "error", respErr)
		}
	}
}
