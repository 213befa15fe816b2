// Package nav models the site navigation bar: mobile menu, section tracking
// and scroll-dependent styling.
package nav

import (
	"net/url"
	"strings"

	"github.com/nfrund/zawiya/internal/ui"
)

const (
	// SectionOffset is how far below the viewport top the current section is read.
	SectionOffset = 200.0
	// AnchorMargin is the extra gap kept between the fixed navbar and a scroll target.
	AnchorMargin = 20.0
	// ScrolledThreshold is the scroll offset past which the navbar is "scrolled".
	ScrolledThreshold = 100.0
	// ScrollTopThreshold is the scroll offset past which the back-to-top button shows.
	ScrollTopThreshold = 300.0
	// ParallaxFactor scales scroll offset into the hero content translation.
	ParallaxFactor = 0.5
)

// Section is a page section with its vertical extent.
type Section struct {
	ID     string
	Top    float64
	Height float64
}

// Controller holds the navigation state of one page.
type Controller struct {
	lock         *ui.ScrollLock
	navbarHeight float64
	links        []string
	active       map[string]bool

	menuOpen         bool
	scrolled         bool
	scrollTopVisible bool
	parallax         float64
}

// New creates a controller for a navbar of the given height with the given link hrefs.
func New(lock *ui.ScrollLock, navbarHeight float64, links ...string) *Controller {
	return &Controller{
		lock:         lock,
		navbarHeight: navbarHeight,
		links:        links,
		active:       make(map[string]bool),
	}
}

// ToggleMenu opens or closes the mobile menu; an open menu locks page scroll.
func (c *Controller) ToggleMenu() {
	c.menuOpen = !c.menuOpen
	if c.menuOpen {
		c.lock.Lock()
	} else {
		c.lock.Unlock()
	}
}

// LinkClicked closes the menu after navigation.
func (c *Controller) LinkClicked() {
	c.closeMenu()
}

// DocumentClick closes the menu for clicks outside both the menu and its toggle.
func (c *Controller) DocumentClick(insideMenu, insideToggle bool) {
	if !insideMenu && !insideToggle {
		c.closeMenu()
	}
}

func (c *Controller) closeMenu() {
	c.menuOpen = false
	c.lock.Unlock()
}

// MenuOpen reports whether the mobile menu is open.
func (c *Controller) MenuOpen() bool { return c.menuOpen }

// AnchorTarget returns the scroll offset for a same-page anchor, accounting for the
// fixed navbar. ok is false for "#", "" or an anchor with no matching section, in
// which case the click is not intercepted.
func (c *Controller) AnchorTarget(href string, sections []Section) (top float64, ok bool) {
	if href == "" || href == "#" || !strings.HasPrefix(href, "#") {
		return 0, false
	}
	id := href[1:]
	for _, s := range sections {
		if s.ID == id {
			return s.Top - c.navbarHeight - AnchorMargin, true
		}
	}
	return 0, false
}

// CurrentSection returns the id of the last section containing scrollY+SectionOffset,
// or "" when none does.
func CurrentSection(scrollY float64, sections []Section) string {
	mark := scrollY + SectionOffset
	current := ""
	for _, s := range sections {
		if mark >= s.Top && mark < s.Top+s.Height {
			current = s.ID
		}
	}
	return current
}

// OnScroll recomputes the active link and the scroll-dependent styling. A page
// without sections keeps the links marked by MarkPath.
func (c *Controller) OnScroll(scrollY float64, sections []Section) {
	if len(sections) > 0 {
		needle := "#" + CurrentSection(scrollY, sections)
		c.active = make(map[string]bool)
		for _, href := range c.links {
			if strings.Contains(href, needle) {
				c.active[href] = true
			}
		}
	}

	c.scrolled = scrollY > ScrolledThreshold
	c.scrollTopVisible = scrollY > ScrollTopThreshold
	c.parallax = scrollY * ParallaxFactor
}

// MarkPath activates the links pointing at the given page path (server-rendered pages).
func (c *Controller) MarkPath(path string) {
	c.active = make(map[string]bool)
	for _, href := range c.links {
		u, err := url.Parse(href)
		if err != nil || u.Fragment != "" {
			continue
		}
		if u.Path == path {
			c.active[href] = true
		}
	}
}

// IsActive reports whether the link is marked active.
func (c *Controller) IsActive(href string) bool { return c.active[href] }

// Links returns the link hrefs in declaration order.
func (c *Controller) Links() []string { return c.links }

// Scrolled reports whether the navbar uses its scrolled style.
func (c *Controller) Scrolled() bool { return c.scrolled }

// ScrollTopVisible reports whether the back-to-top button is shown.
func (c *Controller) ScrollTopVisible() bool { return c.scrollTopVisible }

// ParallaxOffset is the vertical translation applied to the hero content.
func (c *Controller) ParallaxOffset() float64 { return c.parallax }
