// Package apiclient calls the site's JSON endpoints. The CLI wizard and the
// contact command use it as their submitter.
package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/nfrund/zawiya/internal/contact"
	"github.com/nfrund/zawiya/internal/domain"
	"github.com/nfrund/zawiya/internal/registration"
)

// DefaultTimeout bounds every request when no timeout is configured.
const DefaultTimeout = 15 * time.Second

// Client is a small JSON client bound to one base URL.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client. A non-positive timeout selects DefaultTimeout.
func New(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
	}
}

// BaseURL returns the server address the client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// SubmitRegistration posts the wizard data to /api/register.
func (c *Client) SubmitRegistration(ctx context.Context, data map[string]string) (registration.Result, error) {
	var res registration.Result
	if err := c.post(ctx, "/api/register", data, &res); err != nil {
		return registration.Result{}, err
	}
	return res, nil
}

// SubmitContact posts a message to /api/contact.
func (c *Client) SubmitContact(ctx context.Context, msg contact.Message) (contact.Result, error) {
	var res contact.Result
	if err := c.post(ctx, "/api/contact", msg, &res); err != nil {
		return contact.Result{}, err
	}
	return res, nil
}

// Programs fetches the program catalogue.
func (c *Client) Programs(ctx context.Context) ([]domain.Program, error) {
	var out []domain.Program
	if err := c.get(ctx, "/api/programs", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Statistics fetches the live registration statistics.
func (c *Client) Statistics(ctx context.Context) (domain.RegistrationStats, error) {
	var out domain.RegistrationStats
	err := c.get(ctx, "/api/statistics", &out)
	return out, err
}

// Schedules fetches every class session.
func (c *Client) Schedules(ctx context.Context) ([]domain.ClassSession, error) {
	var out []domain.ClassSession
	if err := c.get(ctx, "/api/schedules", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return fmt.Errorf("%s returned status %d", path, resp.StatusCode)
	}
	return decode(resp.Body, out)
}

// post sends body as JSON. Non-2xx responses still carry the envelope, so the
// body is decoded regardless of status; only an undecodable body is an error.
func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	if err := decode(resp.Body, out); err != nil {
		slog.Warn("Undecodable API response", "path", path, "status", resp.StatusCode, "error", err)
		return err
	}
	return nil
}

var errEmptyBody = errors.New("empty response body")

func decode(r io.Reader, out any) error {
	err := json.NewDecoder(r).Decode(out)
	if errors.Is(err, io.EOF) {
		return errEmptyBody
	}
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
