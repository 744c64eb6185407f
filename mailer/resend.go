// Package mailer sends transactional email through Resend and renders
// the order notification messages.
package mailer

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/webirent/webirent-api/errs"
)

const defaultBaseURL = "https://api.resend.com"

type Email struct {
	From    string
	To      string
	Subject string
	HTML    string
}

// Sender is implemented by the Resend client and by test fakes.
type Sender interface {
	Send(ctx context.Context, email Email) error
}

type Client struct {
	apiKey string
	// BaseURL is overridable so tests can point the client at a stub.
	BaseURL string
	http    *resty.Client
}

func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		BaseURL: defaultBaseURL,
		http:    resty.New().SetTimeout(15 * time.Second),
	}
}

func (c *Client) Send(ctx context.Context, email Email) error {
	requestBody := map[string]any{
		"from":    email.From,
		"to":      []string{email.To},
		"subject": email.Subject,
		"html":    email.HTML,
	}

	resp, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(c.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(requestBody).
		Post(c.BaseURL + "/emails")

	if err != nil {
		return fmt.Errorf("%w: %v", errs.ErrNotification, err)
	}
	if resp.StatusCode() != 200 {
		return fmt.Errorf("%w: send failed with status %d: %s",
			errs.ErrNotification, resp.StatusCode(), string(resp.Body()))
	}
	return nil
}
