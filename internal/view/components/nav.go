// Package components holds the reusable page fragments of the site.
package components

import (
	"strconv"

	g "maragu.dev/gomponents"
	c "maragu.dev/gomponents/components"
	. "maragu.dev/gomponents/html"

	"github.com/nfrund/zawiya/internal/ui"
	"github.com/nfrund/zawiya/internal/ui/nav"
)

// NavbarHeight is the navbar height the navigation model assumes. The page script
// measures the rendered navbar instead.
const NavbarHeight = 80

// NavLink is one entry of the main menu.
type NavLink struct {
	Href  string
	Label string
}

// MainLinks are the entries of the main menu in display order.
var MainLinks = []NavLink{
	{Href: "/", Label: "الرئيسية"},
	{Href: "/#programs", Label: "البرامج"},
	{Href: "/structure", Label: "الهيكل التنظيمي"},
	{Href: "/register", Label: "التسجيل"},
	{Href: "/contact", Label: "اتصل بنا"},
}

// NavController builds the navigation model for a page path.
func NavController(path string) *nav.Controller {
	hrefs := make([]string, len(MainLinks))
	for i, l := range MainLinks {
		hrefs[i] = l.Href
	}
	ctl := nav.New(&ui.ScrollLock{}, NavbarHeight, hrefs...)
	ctl.MarkPath(path)
	return ctl
}

// Navbar renders the top navigation with the link of the current page active.
// The scroll thresholds of the navigation model travel as data attributes so the
// page script applies the same values.
func Navbar(path string) g.Node {
	ctl := NavController(path)
	return Nav(Class("navbar"), ID("navbar"),
		Data("section-offset", number(nav.SectionOffset)),
		Data("anchor-margin", number(nav.AnchorMargin)),
		Data("scrolled-after", number(nav.ScrolledThreshold)),
		Data("scroll-top-after", number(nav.ScrollTopThreshold)),
		Data("parallax", number(nav.ParallaxFactor)),
		Div(Class("container nav-container"),
			A(Href("/"), Class("logo"),
				I(Class("fas fa-mosque")),
				Span(g.Text("الزاوية التجانية")),
			),
			Ul(Class("nav-menu"), ID("navMenu"),
				g.Map(MainLinks, func(l NavLink) g.Node {
					return Li(A(
						Href(l.Href),
						c.Classes{"nav-link": true, "active": ctl.IsActive(l.Href)},
						g.Text(l.Label),
					))
				}),
			),
			Button(Type("button"), Class("menu-toggle"), ID("menuToggle"), Aria("label", "القائمة"),
				Span(), Span(), Span(),
			),
		),
	)
}

// ScrollTopButton is shown by the page script once the page has scrolled far enough.
func ScrollTopButton() g.Node {
	return Button(Type("button"), Class("scroll-top"), ID("scrollTop"), Aria("label", "العودة للأعلى"),
		I(Class("fas fa-arrow-up")),
	)
}

func number(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
