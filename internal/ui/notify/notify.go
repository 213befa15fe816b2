// Package notify implements transient toast notifications.
package notify

import (
	"fmt"
	"io"
	"sync"
	"time"
)

// Severity is the notification category; it selects styling and icon.
type Severity string

const (
	Success Severity = "success"
	Error   Severity = "error"
	Warning Severity = "warning"
	Info    Severity = "info"
)

const (
	// DefaultDuration applies when Notify is called with a zero duration.
	DefaultDuration = 5 * time.Second
	// ExitWindow is the length of the exit animation before a toast is removed.
	ExitWindow = 300 * time.Millisecond
)

// Icon returns the icon class for the severity; unknown severities use the info icon.
func (s Severity) Icon() string {
	switch s {
	case Success:
		return "fas fa-check-circle"
	case Error:
		return "fas fa-exclamation-circle"
	case Warning:
		return "fas fa-exclamation-triangle"
	default:
		return "fas fa-info-circle"
	}
}

// Normalize maps unknown severities to Info.
func (s Severity) Normalize() Severity {
	switch s {
	case Success, Error, Warning, Info:
		return s
	default:
		return Info
	}
}

// Notification is one issued toast.
type Notification struct {
	ID       uint64
	Message  string
	Severity Severity
	Duration time.Duration
}

// Notifier is the capability handed to components that need to tell the user something.
type Notifier interface {
	Notify(message string, severity Severity, duration time.Duration)
}

// Surface displays notifications. Leave starts the exit animation, Remove drops the node.
type Surface interface {
	Show(n Notification)
	Leave(id uint64)
	Remove(id uint64)
}

// Timer schedules a callback, e.g. time.AfterFunc.
type Timer interface {
	AfterFunc(d time.Duration, f func())
}

// RealTimer schedules callbacks with the runtime timer.
type RealTimer struct{}

func (RealTimer) AfterFunc(d time.Duration, f func()) { time.AfterFunc(d, f) }

// Center issues notifications onto a surface and retires them on a timer.
// With a nil Timer the surface is expected to run its own expiry (the browser does,
// using the duration carried by each notification).
type Center struct {
	mu      sync.Mutex
	surface Surface
	timer   Timer
	nextID  uint64
	active  map[uint64]struct{}
}

// NewCenter creates a Center drawing on surface.
func NewCenter(surface Surface, timer Timer) *Center {
	return &Center{
		surface: surface,
		timer:   timer,
		active:  make(map[uint64]struct{}),
	}
}

// Notify implements Notifier.
func (c *Center) Notify(message string, severity Severity, duration time.Duration) {
	c.Issue(message, severity, duration)
}

// Issue shows a notification and returns it so callers can dismiss it later.
func (c *Center) Issue(message string, severity Severity, duration time.Duration) Notification {
	if duration <= 0 {
		duration = DefaultDuration
	}

	c.mu.Lock()
	c.nextID++
	n := Notification{
		ID:       c.nextID,
		Message:  message,
		Severity: severity.Normalize(),
		Duration: duration,
	}
	c.active[n.ID] = struct{}{}
	c.mu.Unlock()

	c.surface.Show(n)

	if c.timer != nil {
		c.timer.AfterFunc(duration, func() {
			if !c.isActive(n.ID) {
				return
			}
			c.surface.Leave(n.ID)
			c.timer.AfterFunc(ExitWindow, func() { c.remove(n.ID) })
		})
	}
	return n
}

// Dismiss removes a notification immediately (the close control).
func (c *Center) Dismiss(id uint64) {
	c.remove(id)
}

// Active returns the number of notifications currently on the surface.
func (c *Center) Active() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.active)
}

func (c *Center) isActive(id uint64) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.active[id]
	return ok
}

func (c *Center) remove(id uint64) {
	c.mu.Lock()
	_, ok := c.active[id]
	delete(c.active, id)
	c.mu.Unlock()
	if ok {
		c.surface.Remove(id)
	}
}

// Batch is a Surface that buffers the notifications issued while handling one request.
type Batch struct {
	mu    sync.Mutex
	items []Notification
}

func (b *Batch) Show(n Notification) {
	b.mu.Lock()
	b.items = append(b.items, n)
	b.mu.Unlock()
}

func (b *Batch) Leave(uint64) {}

func (b *Batch) Remove(id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, n := range b.items {
		if n.ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return
		}
	}
}

// Items returns the buffered notifications in issue order.
func (b *Batch) Items() []Notification {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Notification, len(b.items))
	copy(out, b.items)
	return out
}

// Writer is a Surface printing one line per notification, for terminals.
type Writer struct {
	W io.Writer
}

var markers = map[Severity]string{
	Success: "✔",
	Error:   "✘",
	Warning: "!",
	Info:    "i",
}

func (w Writer) Show(n Notification) {
	fmt.Fprintf(w.W, "[%s] %s\n", markers[n.Severity], n.Message)
}

func (Writer) Leave(uint64)  {}
func (Writer) Remove(uint64) {}
