package email

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/nfrund/zawiya/internal/domain"
)

const (
	resendEndpoint = "https://api.resend.com/emails"
	defaultSender  = "Zawiya <onboarding@resend.dev>"
)

// LogSender writes emails to the log instead of sending them. Used in development.
type LogSender struct {
	senderAddress string
}

func (s *LogSender) Send(ctx context.Context, msg domain.Email) error {
	slog.InfoContext(ctx, "Email sent (logged)",
		"from", s.senderAddress,
		"to", msg.To,
		"reply_to", msg.ReplyTo,
		"subject", msg.Subject,
		"body", msg.HTML,
	)
	return nil
}

// ResendSender sends emails through the Resend API.
type ResendSender struct {
	apiKey        string
	senderAddress string
	endpoint      string
	client        *http.Client
}

type resendPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	ReplyTo string   `json:"reply_to,omitempty"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *ResendSender) Send(ctx context.Context, msg domain.Email) error {
	from := s.senderAddress
	if from == "" {
		from = defaultSender
	}

	body, err := json.Marshal(resendPayload{
		From:    from,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		HTML:    msg.HTML,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal resend payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to create resend request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to resend: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend returned status %d: %s", resp.StatusCode, bytes.TrimSpace(detail))
	}

	slog.InfoContext(ctx, "Sent email via Resend", "to", msg.To, "subject", msg.Subject)
	return nil
}
