package view

import (
	"fmt"
	stdhtml "html"
	"time"

	"github.com/a-h/templ"
	"github.com/microcosm-cc/bluemonday"
	g "maragu.dev/gomponents"
	hx "maragu.dev/gomponents-htmx"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/ui/notify"
)

const (
	// ToastContainerID is the element toasts are appended to.
	ToastContainerID = "notifications"
	// ToastExpiredPath answers the expiry ping of a toast with an empty body.
	ToastExpiredPath = "/ui/toast/expired"
)

var toastPolicy = bluemonday.StrictPolicy()

// ToastNode renders one notification. After its duration the load trigger pings
// ToastExpiredPath and htmx deletes the element once the exit window has passed
// (it carries htmx-swapping meanwhile). The close button removes it at once.
func ToastNode(n notify.Notification) g.Node {
	delay := n.Duration
	if delay <= 0 {
		delay = notify.DefaultDuration
	}
	severity := n.Severity.Normalize()
	return Div(ID(fmt.Sprintf("toast-%d", n.ID)), Class("notification notification-"+string(severity)), Role("status"),
		hx.Get(ToastExpiredPath),
		hx.Trigger("load delay:"+htmxDuration(delay)),
		hx.Swap("delete swap:"+htmxDuration(notify.ExitWindow)),
		I(Class(severity.Icon())),
		Span(g.Text(plainText(n.Message))),
		Button(Type("button"), Class("notification-close"), Aria("label", "إغلاق"),
			g.Attr("onclick", "this.parentElement.remove()"),
			I(Class("fas fa-times")),
		),
	)
}

// Toast is ToastNode for templ callers.
func Toast(n notify.Notification) templ.Component {
	return Templ(ToastNode(n))
}

// ToastsNode renders the notifications of a batch as an out-of-band append to
// the toast container, so any htmx response can carry them.
func ToastsNode(items []notify.Notification) g.Node {
	if len(items) == 0 {
		return nil
	}
	return Div(hx.SwapOOB("beforeend:#"+ToastContainerID), g.Map(items, ToastNode))
}

// Toasts is ToastsNode for templ callers.
func Toasts(items []notify.Notification) templ.Component {
	if len(items) == 0 {
		return Templ(g.Group(nil))
	}
	return Templ(ToastsNode(items))
}

// plainText strips markup from a message; gomponents escapes what is left.
func plainText(s string) string {
	return stdhtml.UnescapeString(toastPolicy.Sanitize(s))
}

// htmxDuration formats d the way htmx timing modifiers expect, e.g. "5s" or "300ms".
func htmxDuration(d time.Duration) string {
	if d%time.Second == 0 {
		return fmt.Sprintf("%ds", d/time.Second)
	}
	return fmt.Sprintf("%dms", d/time.Millisecond)
}
