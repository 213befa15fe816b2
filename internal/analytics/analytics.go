// Package analytics records page views and UI events. Events are logged and
// published on the bus; there is no external analytics backend.
package analytics

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/zawiya/internal/pubsub"
)

// Event is a categorised UI event, e.g. Share/Success/<title>.
type Event struct {
	Category string    `json:"category"`
	Action   string    `json:"action"`
	Label    string    `json:"label"`
	At       time.Time `json:"at"`
}

// PageView is a visited path.
type PageView struct {
	Path string    `json:"path"`
	At   time.Time `json:"at"`
}

var (
	EventTopic    = pubsub.NewEvent[Event]("analytics.event")
	PageViewTopic = pubsub.NewEvent[PageView]("analytics.pageview")
)

// Tracker records events for one actor (a visitor session or the CLI user).
type Tracker struct {
	pub    pubsub.Publisher
	logger *slog.Logger
	actor  string
	now    func() time.Time
}

// New creates a tracker. A nil publisher only logs.
func New(pub pubsub.Publisher, logger *slog.Logger) *Tracker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Tracker{pub: pub, logger: logger, now: time.Now}
}

// For returns a tracker attributing events to actor.
func (t *Tracker) For(actor string) *Tracker {
	c := *t
	c.actor = actor
	return &c
}

// TrackEvent records a UI event. It never fails.
func (t *Tracker) TrackEvent(category, action, label string) {
	t.logger.Info("Event", "category", category, "action", action, "label", label, "actor", t.actor)
	if t.pub == nil {
		return
	}
	ev := Event{Category: category, Action: action, Label: label, At: t.now()}
	if err := pubsub.Publish(context.Background(), t.pub, EventTopic, t.actor, ev); err != nil {
		t.logger.Warn("Failed to publish analytics event", "error", err)
	}
}

// TrackPageView records a visited path. It never fails.
func (t *Tracker) TrackPageView(path string) {
	t.logger.Info("Page view", "path", path, "actor", t.actor)
	if t.pub == nil {
		return
	}
	pv := PageView{Path: path, At: t.now()}
	if err := pubsub.Publish(context.Background(), t.pub, PageViewTopic, t.actor, pv); err != nil {
		t.logger.Warn("Failed to publish page view", "error", err)
	}
}
