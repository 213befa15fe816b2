// Package modal models overlay dialogs and their effect on page scroll.
package modal

import (
	"sort"

	"github.com/nfrund/zawiya/internal/ui"
)

// EscapeKey is the key name that closes every open modal.
const EscapeKey = "Escape"

// Controller tracks which declared modals are open.
//
// Closing any modal releases the scroll lock, even when another modal is still
// open. Escape closes all modals, so the lock is consistent after it.
type Controller struct {
	lock *ui.ScrollLock
	open map[string]bool
}

// New declares the modals present on the page. Ids not declared here are ignored.
func New(lock *ui.ScrollLock, ids ...string) *Controller {
	c := &Controller{lock: lock, open: make(map[string]bool, len(ids))}
	for _, id := range ids {
		c.open[id] = false
	}
	return c
}

// Open shows a modal and locks page scroll.
func (c *Controller) Open(id string) {
	if _, ok := c.open[id]; !ok {
		return
	}
	c.open[id] = true
	c.lock.Lock()
}

// Close hides a modal and unlocks page scroll.
func (c *Controller) Close(id string) {
	if _, ok := c.open[id]; !ok {
		return
	}
	c.open[id] = false
	c.lock.Unlock()
}

// OverlayClick closes the modal only when the click landed on the overlay itself,
// not on the dialog content.
func (c *Controller) OverlayClick(id string, targetIsOverlay bool) {
	if targetIsOverlay {
		c.Close(id)
	}
}

// KeyDown handles a key press anywhere on the page.
func (c *Controller) KeyDown(key string) {
	if key == EscapeKey {
		c.CloseAll()
	}
}

// CloseAll closes every open modal.
func (c *Controller) CloseAll() {
	for _, id := range c.OpenIDs() {
		c.Close(id)
	}
}

// IsOpen reports whether the modal is open.
func (c *Controller) IsOpen(id string) bool {
	return c.open[id]
}

// OpenIDs returns the open modals in lexical order.
func (c *Controller) OpenIDs() []string {
	var ids []string
	for id, open := range c.open {
		if open {
			ids = append(ids, id)
		}
	}
	sort.Strings(ids)
	return ids
}

// Restore re-opens the given modals without touching the scroll lock.
// It rebuilds state saved between requests.
func (c *Controller) Restore(openIDs []string) {
	for _, id := range openIDs {
		if _, ok := c.open[id]; ok {
			c.open[id] = true
		}
	}
}
