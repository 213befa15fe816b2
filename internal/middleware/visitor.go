package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
)

// Visitor assigns every browser a stable anonymous id kept in the session. It must
// run after the session middleware and before Logger.
func Visitor(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sess, err := session.Get(SessionName, c)
		if err != nil {
			return next(c)
		}
		id, _ := sess.Values[visitorKey].(string)
		if id == "" {
			id = uuid.NewString()
			sess.Values[visitorKey] = id
			if err := sess.Save(c.Request(), c.Response()); err != nil {
				FromContext(c.Request().Context()).Warn("Failed to save visitor session", "error", err)
			}
		}
		c.Set(visitorKey, id)
		return next(c)
	}
}

// VisitorID returns the id assigned by Visitor, or "" outside of it.
func VisitorID(c echo.Context) string {
	id, _ := c.Get(visitorKey).(string)
	return id
}
