package service

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/email"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/pubsub"
)

// MsgContactReceived confirms a stored contact message.
const MsgContactReceived = "تم إرسال رسالتك بنجاح. سنتواصل معك قريباً"

// ContactInput is the body of the contact endpoint.
type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required"`
}

// Contacts stores contact messages and notifies the administrator.
type Contacts struct {
	repo       domain.ContactRepository
	mailer     domain.EmailSender
	adminEmail string
	publisher  pubsub.Publisher
	validate   *validator.Validate
	now        func() time.Time
}

func NewContacts(repo domain.ContactRepository, mailer domain.EmailSender, adminEmail string, pub pubsub.Publisher, v *validator.Validate) *Contacts {
	return &Contacts{repo: repo, mailer: mailer, adminEmail: adminEmail, publisher: pub, validate: v, now: time.Now}
}

// Submit stores the message. Mail delivery failures are logged only.
func (s *Contacts) Submit(ctx context.Context, in ContactInput) (*domain.ContactMessage, error) {
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return nil, firstFieldError(err)
	}

	m := &domain.ContactMessage{
		Name:      in.Name,
		Email:     in.Email,
		Phone:     in.Phone,
		Subject:   in.Subject,
		Message:   in.Message,
		CreatedAt: s.now(),
		Status:    domain.ContactStatusNew,
	}
	if err := s.repo.Create(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to save contact message: %w", err)
	}

	if s.mailer != nil && s.adminEmail != "" {
		if err := s.mailer.Send(ctx, email.ContactNotice(s.adminEmail, *m)); err != nil {
			middleware.FromContext(ctx).Error("Failed to notify administrator", "number", m.Number, "error", err)
		}
	}
	if s.publisher != nil {
		ev := ContactReceived{Number: m.Number, Subject: m.Subject, At: m.CreatedAt}
		if err := pubsub.Publish(ctx, s.publisher, ContactReceivedTopic, m.Email, ev); err != nil {
			middleware.FromContext(ctx).Warn("Failed to publish contact event", "error", err)
		}
	}
	return m, nil
}

// List returns every stored message.
func (s *Contacts) List(ctx context.Context) ([]domain.ContactMessage, error) {
	return s.repo.List(ctx)
}
