// Package contact drives the contact form: validation, a single submission and
// the temporary success panel.
package contact

import (
	"context"
	"sync"
	"time"

	"github.com/nfrund/zawiya/internal/ui/notify"
	"github.com/nfrund/zawiya/internal/validate"
)

const (
	MsgInvalid         = "يرجى ملء جميع الحقول المطلوبة بشكل صحيح"
	MsgFailed          = "حدث خطأ"
	MsgConnectionError = "حدث خطأ في الاتصال بالخادم"

	LabelSubmit  = "إرسال الرسالة"
	LabelSending = "جاري الإرسال..."

	// SuccessDuration is how long the success panel replaces the form.
	SuccessDuration = 5 * time.Second
)

// Field names of the contact form.
const (
	FieldName    = "name"
	FieldEmail   = "email"
	FieldPhone   = "phone"
	FieldSubject = "subject"
	FieldMessage = "message"
)

// Message is the payload sent to the contact endpoint.
type Message struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// Result is the contact endpoint's response envelope.
type Result struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// Sender delivers a message to the contact endpoint. An error means the
// request did not complete.
type Sender interface {
	SubmitContact(ctx context.Context, msg Message) (Result, error)
}

// Phase is the visible state of the form.
type Phase int

const (
	Editing Phase = iota
	Sending
	Succeeded
)

// Fields returns the contact form declaration. Phone is optional.
func Fields() []validate.Field {
	return []validate.Field{
		{Name: FieldName, Label: "الاسم الكامل", Kind: validate.KindText, Required: true},
		{Name: FieldEmail, Label: "البريد الإلكتروني", Kind: validate.KindEmail, Required: true},
		{Name: FieldPhone, Label: "رقم الهاتف", Kind: validate.KindPhone},
		{Name: FieldSubject, Label: "الموضوع", Kind: validate.KindSelect, Required: true},
		{Name: FieldMessage, Label: "الرسالة", Kind: validate.KindTextarea, Required: true},
	}
}

// Submitter is the contact form state machine of one visitor.
type Submitter struct {
	mu       sync.Mutex
	form     *validate.Form
	sender   Sender
	notifier notify.Notifier
	timer    notify.Timer
	phase    Phase
}

// New creates a Submitter. A nil timer leaves the reset to the caller, who
// calls Reset once SuccessDuration has elapsed.
func New(checker validate.Checker, sender Sender, notifier notify.Notifier, timer notify.Timer) *Submitter {
	return &Submitter{
		form:     validate.NewForm(checker, Fields()...),
		sender:   sender,
		notifier: notifier,
		timer:    timer,
	}
}

// Submit validates values and, when valid, sends them once.
// It reports whether the message was accepted.
func (s *Submitter) Submit(ctx context.Context, values map[string]string) bool {
	s.mu.Lock()
	s.form.Fill(values)
	if !s.form.ValidateAll() {
		s.mu.Unlock()
		s.notifier.Notify(MsgInvalid, notify.Error, 0)
		return false
	}
	msg := Message{
		Name:    values[FieldName],
		Email:   values[FieldEmail],
		Phone:   values[FieldPhone],
		Subject: values[FieldSubject],
		Message: values[FieldMessage],
	}
	s.phase = Sending
	s.mu.Unlock()

	res, err := s.sender.SubmitContact(ctx, msg)

	s.mu.Lock()
	defer s.mu.Unlock()
	switch {
	case err != nil:
		s.phase = Editing
		s.notifier.Notify(MsgConnectionError, notify.Error, 0)
		return false
	case !res.Success:
		s.phase = Editing
		m := res.Message
		if m == "" {
			m = MsgFailed
		}
		s.notifier.Notify(m, notify.Error, 0)
		return false
	}

	s.phase = Succeeded
	if s.timer != nil {
		s.timer.AfterFunc(SuccessDuration, s.Reset)
	}
	return true
}

// Reset clears the form and shows it again with the button restored.
func (s *Submitter) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.form.Reset()
	s.phase = Editing
}

// Phase returns the current visible state.
func (s *Submitter) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// ButtonDisabled reports whether the submit button is disabled.
func (s *Submitter) ButtonDisabled() bool { return s.Phase() != Editing }

// ButtonLabel returns the submit button caption.
func (s *Submitter) ButtonLabel() string {
	if s.Phase() == Sending {
		return LabelSending
	}
	return LabelSubmit
}

// FormVisible reports whether the form is shown rather than the success panel.
func (s *Submitter) FormVisible() bool { return s.Phase() != Succeeded }

// Values returns the current form values.
func (s *Submitter) Values() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Values()
}

// Errors returns the inline field messages.
func (s *Submitter) Errors() map[string]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.form.Errors()
}
