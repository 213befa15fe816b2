package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/nfrund/zawiya/internal/analytics"
	"github.com/nfrund/zawiya/internal/pubsub"
)

// StudentRegistered is published after a registration is stored.
type StudentRegistered struct {
	StudentID string    `json:"student_id"`
	Program   string    `json:"program"`
	QRCodes   int       `json:"qr_codes"`
	At        time.Time `json:"at"`
}

// ContactReceived is published after a contact message is stored.
type ContactReceived struct {
	Number  int       `json:"number"`
	Subject string    `json:"subject"`
	At      time.Time `json:"at"`
}

// NewsletterJoined is published when an address subscribes.
type NewsletterJoined struct {
	Email string    `json:"email"`
	At    time.Time `json:"at"`
}

var (
	StudentRegisteredTopic = pubsub.NewEvent[StudentRegistered]("registration.created")
	ContactReceivedTopic   = pubsub.NewEvent[ContactReceived]("contact.received")
	NewsletterJoinedTopic  = pubsub.NewEvent[NewsletterJoined]("newsletter.joined")
)

// StartListeners subscribes the audit log to every domain and analytics topic.
// Subscriptions end when ctx is canceled.
func StartListeners(ctx context.Context, sub pubsub.Subscriber, logger *slog.Logger) error {
	if err := pubsub.Subscribe(ctx, sub, StudentRegisteredTopic, func(_ context.Context, actor string, e StudentRegistered) error {
		logger.Info("Student registered", "student_id", e.StudentID, "program", e.Program, "qr_codes", e.QRCodes)
		return nil
	}); err != nil {
		return err
	}
	if err := pubsub.Subscribe(ctx, sub, ContactReceivedTopic, func(_ context.Context, actor string, e ContactReceived) error {
		logger.Info("Contact message received", "number", e.Number, "subject", e.Subject)
		return nil
	}); err != nil {
		return err
	}
	if err := pubsub.Subscribe(ctx, sub, NewsletterJoinedTopic, func(_ context.Context, actor string, e NewsletterJoined) error {
		logger.Info("Newsletter subscription", "email", e.Email)
		return nil
	}); err != nil {
		return err
	}
	if err := pubsub.Subscribe(ctx, sub, analytics.EventTopic, func(_ context.Context, actor string, e analytics.Event) error {
		logger.Debug("Analytics event", "actor", actor, "category", e.Category, "action", e.Action, "label", e.Label)
		return nil
	}); err != nil {
		return err
	}
	return pubsub.Subscribe(ctx, sub, analytics.PageViewTopic, func(_ context.Context, actor string, e analytics.PageView) error {
		logger.Debug("Page view", "actor", actor, "path", e.Path)
		return nil
	})
}
