package forms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"sync"
	"time"
)

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateEmail reports whether the address looks deliverable.
func ValidateEmail(email string) bool {
	return emailRegex.MatchString(email)
}

// ContactForm is the contact page payload.
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Company string `json:"company,omitempty"`
	Message string `json:"message"`
}

// NewsletterSignup is the newsletter footer payload.
type NewsletterSignup struct {
	Email string `json:"email"`
}

// Validate returns field-keyed error messages; empty map means valid.
func (f ContactForm) Validate() map[string]string {
	errs := make(map[string]string)
	if strings.TrimSpace(f.Name) == "" {
		errs["name"] = "name is required"
	}
	if !ValidateEmail(f.Email) {
		errs["email"] = "valid email is required"
	}
	if strings.TrimSpace(f.Message) == "" {
		errs["message"] = "message is required"
	}
	return errs
}

func (f NewsletterSignup) Validate() map[string]string {
	errs := make(map[string]string)
	if !ValidateEmail(f.Email) {
		errs["email"] = "valid email is required"
	}
	return errs
}

// Response is the submission outcome.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// Client forwards submissions to the configured endpoint. With no
// endpoint it simulates the remote call (fixed delay, ~90% success)
// so the demo pages keep working offline. One client is shared by all
// handlers, so the RNG behind the simulated path is mutex-guarded.
type Client struct {
	endpoint string
	http     *http.Client
	delay    time.Duration

	randMu sync.Mutex
	rand   *rand.Rand
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		http:     &http.Client{Timeout: 10 * time.Second},
		delay:    time.Second,
		rand:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewSimulatedClient returns a client with no endpoint and a short delay,
// for tests and local runs.
func NewSimulatedClient(delay time.Duration) *Client {
	c := NewClient("")
	c.delay = delay
	return c
}

// Submit posts the payload as JSON. The simulated path honors ctx
// cancellation during its artificial delay.
func (c *Client) Submit(ctx context.Context, payload interface{}) (*Response, error) {
	if c.endpoint == "" {
		return c.simulate(ctx)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return &Response{Success: false, Message: "Failed to send message. Please try again."}, nil
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Response{Success: false, Message: fmt.Sprintf("submission failed with status %d", resp.StatusCode)}, nil
	}

	out := &Response{Success: true, Message: "Message sent successfully!"}
	_ = json.NewDecoder(resp.Body).Decode(out)
	out.Success = true
	return out, nil
}

func (c *Client) simulate(ctx context.Context) (*Response, error) {
	select {
	case <-time.After(c.delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}
	c.randMu.Lock()
	roll := c.rand.Float64()
	id := c.rand.Int63n(1 << 36)
	c.randMu.Unlock()
	if roll > 0.1 {
		return &Response{
			Success: true,
			Message: "Operation completed successfully",
			ID:      fmt.Sprintf("%09x", id),
		}, nil
	}
	return &Response{Success: false, Message: "Operation failed. Please try again."}, nil
}
