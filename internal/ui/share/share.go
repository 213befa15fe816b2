// Package share copies text to the clipboard and shares links, with fallbacks.
package share

import (
	"log/slog"

	"github.com/nfrund/zawiya/internal/ui/notify"
)

const (
	MsgCopied     = "تم النسخ بنجاح"
	MsgCopyFailed = "فشل النسخ"
)

// Clipboard writes text to a clipboard.
type Clipboard interface {
	WriteText(text string) error
}

// NativeSharer hands content to the platform share sheet.
type NativeSharer interface {
	Share(title, text, url string) error
}

// EventTracker records analytics events.
type EventTracker interface {
	TrackEvent(category, action, label string)
}

// Helper bundles the clipboard and share capabilities of a surface.
type Helper struct {
	// Primary is the preferred clipboard; Fallback is used when Primary is nil.
	Primary  Clipboard
	Fallback Clipboard
	Sharer   NativeSharer
	Notifier notify.Notifier
	Tracker  EventTracker
	// Logger receives failed native shares; nil uses slog.Default.
	Logger *slog.Logger
}

// Copy writes text to the clipboard and tells the user how it went.
func (h *Helper) Copy(text string) bool {
	cb := h.Primary
	if cb == nil {
		cb = h.Fallback
	}
	if cb == nil || cb.WriteText(text) != nil {
		h.Notifier.Notify(MsgCopyFailed, notify.Error, 0)
		return false
	}
	h.Notifier.Notify(MsgCopied, notify.Success, 0)
	return true
}

// Share uses the native share sheet when present and otherwise copies url.
// A failed native share is only logged.
func (h *Helper) Share(title, text, url string) {
	if h.Sharer == nil {
		h.Copy(url)
		return
	}
	if err := h.Sharer.Share(title, text, url); err != nil {
		h.logger().Error("Error sharing", "error", err, "title", title)
		return
	}
	if h.Tracker != nil {
		h.Tracker.TrackEvent("Share", "Success", title)
	}
}

func (h *Helper) logger() *slog.Logger {
	if h.Logger != nil {
		return h.Logger
	}
	return slog.Default()
}
