package domain

import (
	"context"
	"time"
)

// ContactStatusNew marks a message nobody has handled yet.
const ContactStatusNew = "جديدة"

// ContactMessage is a message submitted through the contact form.
type ContactMessage struct {
	Number    int       `json:"number"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
	Status    string    `json:"status"`
}

// ContactRepository persists contact messages.
type ContactRepository interface {
	Create(ctx context.Context, msg *ContactMessage) error
	List(ctx context.Context) ([]ContactMessage, error)
}
