package handlers

import (
	"context"
	"errors"

	"github.com/nfrund/zawiya/internal/contact"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/middleware"
	"github.com/nfrund/zawiya/internal/registration"
	"github.com/nfrund/zawiya/internal/service"
)

// RegistrationSubmitter feeds the web wizard straight into the registration
// service, with the same outcomes the JSON endpoint reports.
type RegistrationSubmitter struct {
	Registrations *service.Registrations
}

func (s RegistrationSubmitter) SubmitRegistration(ctx context.Context, data map[string]string) (registration.Result, error) {
	m := make(map[string]any, len(data))
	for k, v := range data {
		m[k] = v
	}
	st, err := s.Registrations.Register(ctx, service.RegisterInputFromMap(m))
	if err != nil {
		var fe *domain.FieldError
		if errors.As(err, &fe) {
			return registration.Result{Message: fe.Message}, nil
		}
		middleware.FromContext(ctx).Error("Registration failed", "error", err)
		return registration.Result{Message: MsgErrorPrefix + err.Error()}, nil
	}
	return registration.Result{Success: true, StudentID: st.StudentID, Message: service.MsgRegistered}, nil
}

// ContactSender feeds the web contact form into the contact service.
type ContactSender struct {
	Contacts *service.Contacts
}

func (s ContactSender) SubmitContact(ctx context.Context, msg contact.Message) (contact.Result, error) {
	_, err := s.Contacts.Submit(ctx, service.ContactInput{
		Name:    msg.Name,
		Email:   msg.Email,
		Phone:   msg.Phone,
		Subject: msg.Subject,
		Message: msg.Message,
	})
	if err != nil {
		var fe *domain.FieldError
		if errors.As(err, &fe) {
			return contact.Result{Message: fe.Message}, nil
		}
		middleware.FromContext(ctx).Error("Contact submission failed", "error", err)
		return contact.Result{Message: MsgErrorPrefix + err.Error()}, nil
	}
	return contact.Result{Success: true, Message: service.MsgContactReceived}, nil
}
