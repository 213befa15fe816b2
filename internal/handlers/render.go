package handlers

import (
	"github.com/labstack/echo/v4"
	g "maragu.dev/gomponents"

	"github.com/nfrund/zawiya/internal/rendering"
	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/nfrund/zawiya/internal/view"
	"github.com/nfrund/zawiya/internal/view/components"
	"github.com/nfrund/zawiya/internal/view/layout"
)

// responder renders pages and htmx fragments with the notifications issued
// while handling the request.
type responder struct {
	renderer rendering.Renderer
}

// notifications returns a notifier whose toasts are collected for the response.
// The browser runs the expiry timers.
func notifications() (*notify.Center, *notify.Batch) {
	batch := &notify.Batch{}
	return notify.NewCenter(batch, nil), batch
}

// page renders a full page. Pending flashes become toasts.
func (r responder) page(c echo.Context, status int, title string, batch *notify.Batch, body g.Node) error {
	if batch == nil {
		batch = &notify.Batch{}
	}
	view.DrainFlashes(c, notify.NewCenter(batch, nil))
	props := layout.Props{
		Title:        title,
		Path:         c.Request().URL.Path,
		Toasts:       batch.Items(),
		ScrollLocked: view.LoadModals(c).Locked,
	}
	return r.renderer.RenderPage(c, status, layout.Page(props, body))
}

// fragment renders nodes followed by the batch's toasts as out-of-band swaps.
func (r responder) fragment(c echo.Context, status int, batch *notify.Batch, nodes ...g.Node) error {
	comps := make([]any, 0, len(nodes)+1)
	for _, n := range nodes {
		if n != nil {
			comps = append(comps, n)
		}
	}
	if batch != nil {
		comps = append(comps, view.Toasts(batch.Items()))
	}
	return r.renderer.RenderFragments(c, status, comps...)
}

// lazyImages reports whether images should be deferred. Only a browser that
// announced it cannot observe visibility gets real sources at once.
func lazyImages(c echo.Context) bool {
	ck, err := c.Cookie(components.ObserverCookie)
	return err != nil || ck.Value != "0"
}
