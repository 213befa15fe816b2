package view

import (
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"

	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/ui/notify"
)

// flashSeverities are the session flash keys, drained in this order.
var flashSeverities = []notify.Severity{notify.Success, notify.Error, notify.Warning, notify.Info}

// SetFlash queues a message to be shown as a notification on the next page.
func SetFlash(c echo.Context, severity notify.Severity, message string) {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to load session for flash", "error", err)
		return
	}
	sess.AddFlash(message, string(severity.Normalize()))
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		middleware.FromContext(c.Request().Context()).Warn("Failed to save flash", "error", err)
	}
}

// SetFlashSuccess sets a success flash message.
func SetFlashSuccess(c echo.Context, message string) {
	SetFlash(c, notify.Success, message)
}

// SetFlashError sets an error flash message.
func SetFlashError(c echo.Context, message string) {
	SetFlash(c, notify.Error, message)
}

// DrainFlashes issues every queued flash on n and clears them from the session.
// It returns the number of flashes issued.
func DrainFlashes(c echo.Context, n notify.Notifier) int {
	sess, err := session.Get(middleware.SessionName, c)
	if err != nil {
		return 0
	}

	count := 0
	for _, sev := range flashSeverities {
		for _, f := range sess.Flashes(string(sev)) {
			if msg, ok := f.(string); ok {
				n.Notify(msg, sev, 0)
				count++
			}
		}
	}
	if count > 0 {
		_ = sess.Save(c.Request(), c.Response())
	}
	return count
}
