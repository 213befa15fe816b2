// Package accordion models the FAQ list where at most one answer is open.
package accordion

// Accordion tracks the open item; -1 means all closed.
type Accordion struct {
	size int
	open int
}

// New creates an accordion of n items, all closed.
func New(n int) *Accordion {
	return &Accordion{size: n, open: -1}
}

// Toggle closes every item and then opens i unless it was the open one.
func (a *Accordion) Toggle(i int) {
	if i < 0 || i >= a.size {
		return
	}
	if a.open == i {
		a.open = -1
		return
	}
	a.open = i
}

// IsOpen reports whether item i is open.
func (a *Accordion) IsOpen(i int) bool {
	return a.open == i
}

// Open returns the open item or -1.
func (a *Accordion) Open() int {
	return a.open
}
