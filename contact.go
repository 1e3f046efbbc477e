package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const sendEmailPath = "/send-email/"

// ContactForm is the payload of the contact form. The same struct is bound
// by the server, so the tags cover both sides.
type ContactForm struct {
	Name    string `json:"name" validate:"required" binding:"required"`
	Email   string `json:"email" validate:"required,email" binding:"required,email"`
	Subject string `json:"subject" validate:"required" binding:"required"`
	Body    string `json:"body" validate:"required" binding:"required"`
}

// Outcome is the state of a single submission.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSuccess
	OutcomeFailure
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeSuccess:
		return "success"
	case OutcomeFailure:
		return "failure"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// ErrDeliveryRejected is wrapped by every non-2xx response.
var ErrDeliveryRejected = errors.New("mail endpoint rejected the message")

// StatusError carries the status of a non-2xx response.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("send email: status %d", e.StatusCode)
	}
	return fmt.Sprintf("send email: status %d: %s", e.StatusCode, e.Body)
}

func (e *StatusError) Unwrap() error { return ErrDeliveryRejected }

// Submitter posts contact forms to the mail endpoint. One call is one
// request: no retries, no queueing.
type Submitter struct {
	endpoint string
	client   *http.Client
}

func NewSubmitter(baseURL string, client *http.Client) *Submitter {
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	return &Submitter{
		endpoint: strings.TrimRight(baseURL, "/") + sendEmailPath,
		client:   client,
	}
}

// Submit sends form and reports nil for any 2xx status.
func (s *Submitter) Submit(ctx context.Context, form ContactForm) error {
	payload, err := json.Marshal(form)
	if err != nil {
		return fmt.Errorf("encode contact form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &StatusError{StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}
	io.Copy(io.Discard, resp.Body)
	return nil
}
