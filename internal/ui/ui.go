// Package ui holds the interaction models of the site, independent of the
// surface (HTML page, terminal) that renders them.
package ui

import "sync"

// ScrollLock is the page-wide scroll lock toggled by the menu and by modals.
// It is a plain flag: there is no reference counting, so any Unlock releases it.
type ScrollLock struct {
	mu     sync.Mutex
	locked bool
}

func (l *ScrollLock) Lock() {
	l.mu.Lock()
	l.locked = true
	l.mu.Unlock()
}

func (l *ScrollLock) Unlock() {
	l.mu.Lock()
	l.locked = false
	l.mu.Unlock()
}

// Locked reports whether page scroll is currently disabled.
func (l *ScrollLock) Locked() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.locked
}
