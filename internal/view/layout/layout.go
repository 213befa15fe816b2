// Package layout renders the page shell shared by every page of the site.
package layout

import (
	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/nfrund/zawiya/internal/view"
	"github.com/nfrund/zawiya/internal/view/components"
)

const siteName = "الزاوية التجانية - المدرسة الإلكترونية"

// Props are the per-request values of the shell.
type Props struct {
	Title       string
	Description string
	// Path is the request path, used to mark the active menu entry.
	Path string
	// Toasts are rendered into the notification container on load, e.g. flashes.
	Toasts []notify.Notification
	// ScrollLocked is true when a modal restored from the session is open.
	ScrollLocked bool
}

// CalculateTitle prefixes the site name with the page title, if any.
func CalculateTitle(title string) string {
	if title != "" {
		return title + " - " + siteName
	}
	return siteName
}

// Page renders a full document around body.
func Page(p Props, body ...g.Node) g.Node {
	return c.HTML5(c.HTML5Props{
		Title:       CalculateTitle(p.Title),
		Description: p.Description,
		Language:    "ar",
		HTMLAttrs:   []g.Node{g.Attr("dir", "rtl")},
		Head: []g.Node{
			Link(Rel("stylesheet"), Href("https://cdnjs.cloudflare.com/ajax/libs/font-awesome/6.5.1/css/all.min.css")),
			Link(Rel("stylesheet"), Href("/static/css/style.css")),
			Link(Rel("manifest"), Href("/static/manifest.json")),
			Script(Src("https://unpkg.com/htmx.org@2.0.4"), Defer()),
			Script(Src("/static/js/app.js"), Defer()),
			components.ScrollLock(p.ScrollLocked, false),
		},
		Body: []g.Node{
			components.Navbar(p.Path),
			Main(ID("main"), g.Group(body)),
			footer(),
			Div(ID(view.ToastContainerID), Class("notifications"),
				g.Map(p.Toasts, view.ToastNode),
			),
			components.LoadingOverlay(),
			components.EscapeListener(),
			components.ScrollTopButton(),
		},
	})
}

func footer() g.Node {
	return Footer(Class("footer"),
		Div(Class("container footer-content"),
			Div(Class("footer-section"),
				H3(g.Text("الزاوية التجانية")),
				P(g.Text("مدرسة إلكترونية لتحفيظ القرآن الكريم وتعليم العلوم الشرعية")),
			),
			Div(Class("footer-section"),
				H3(g.Text("روابط سريعة")),
				Ul(g.Map(components.MainLinks, func(l components.NavLink) g.Node {
					return Li(A(Href(l.Href), g.Text(l.Label)))
				})),
			),
		),
		Div(Class("footer-bottom"), P(g.Text("جميع الحقوق محفوظة © الزاوية التجانية"))),
	)
}
