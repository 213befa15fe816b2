package domain

import "context"

// Email is one outgoing message. ReplyTo is optional.
type Email struct {
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// EmailSender delivers emails. Implementations exist for the log and for Resend.
type EmailSender interface {
	Send(ctx context.Context, msg Email) error
}
