package middleware

import (
	"net/http"

	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

const (
	// SessionName is the cookie session shared by the admin flag, the visitor id and
	// the per-visitor UI state.
	SessionName = "zawiya-session"

	adminFlagKey = "admin_logged_in"
	visitorKey   = "visitor_id"

	// AdminLoginPath is where unauthenticated admin requests are sent.
	AdminLoginPath = "/admin/login"
)

// RequireAdmin protects the admin routes. Requests without the admin flag in the
// session are redirected to the login page; htmx requests get an HX-Redirect.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !IsAdmin(c) {
			FromContext(c.Request().Context()).Info("Unauthenticated admin request", "path", c.Request().URL.Path)
			if c.Request().Header.Get("HX-Request") == "true" {
				c.Response().Header().Set("HX-Redirect", AdminLoginPath)
				return c.NoContent(http.StatusUnauthorized)
			}
			return c.Redirect(http.StatusSeeOther, AdminLoginPath)
		}
		return next(c)
	}
}

// IsAdmin reports whether the session carries the admin flag.
func IsAdmin(c echo.Context) bool {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return false
	}
	ok, _ := sess.Values[adminFlagKey].(bool)
	return ok
}

// SetAdmin sets or clears the admin flag and saves the session.
func SetAdmin(c echo.Context, admin bool) error {
	sess, err := session.Get(SessionName, c)
	if err != nil {
		return err
	}
	if admin {
		sess.Values[adminFlagKey] = true
	} else {
		delete(sess.Values, adminFlagKey)
	}
	return sess.Save(c.Request(), c.Response())
}
