// Package email sends transactional notifications for contact and
// booking submissions through Resend.
package email

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/resend/resend-go/v2"

	"pawsome-backend/internal/model"
)

type Client struct {
	client    *resend.Client
	from      string
	recipient string
}

func NewClient(apiKey string, from string, recipient string) *Client {
	return &Client{
		client:    resend.NewClient(apiKey),
		from:      from,
		recipient: recipient,
	}
}

// SendContactNotification delivers one submission to the business inbox.
// A single attempt is made; retry policy belongs to the caller, and the
// caller here deliberately has none. Cancelling ctx abandons the
// outbound call.
func (c *Client) SendContactNotification(ctx context.Context, sub model.ContactSubmission) error {
	if c.recipient == "" {
		return fmt.Errorf("contact recipient is not configured")
	}

	body, err := renderContactNotification(sub)
	if err != nil {
		return err
	}

	subject := fmt.Sprintf("New contact form submission from %s", sub.Name)
	if sub.Service != "" {
		subject = fmt.Sprintf("New booking request from %s: %s", sub.Name, sub.Service)
	}

	_, err = c.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    c.from,
		To:      []string{c.recipient},
		ReplyTo: sub.Email,
		Subject: subject,
		Html:    body,
	})
	if err != nil {
		return fmt.Errorf("send contact notification: %w", err)
	}

	return nil
}

func renderContactNotification(sub model.ContactSubmission) (string, error) {
	tmpl, err := template.New("contact_notification").Parse(contactNotificationHTML)
	if err != nil {
		return "", fmt.Errorf("parse contact notification template: %w", err)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, sub); err != nil {
		return "", fmt.Errorf("render contact notification: %w", err)
	}

	return body.String(), nil
}
