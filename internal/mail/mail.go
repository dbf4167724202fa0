// Package mail builds and delivers the contact notification email.
package mail

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/resend/resend-go/v2"

	"bastianbuilt.com/internal/models"
)

// Message is one outgoing email
type Message struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
}

// Sender delivers messages and returns the provider's message id
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// ResendSender delivers mail through the Resend API
type ResendSender struct {
	client *resend.Client
}

// NewResendSender creates a sender authenticated with apiKey
func NewResendSender(apiKey string) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey)}
}

// Send delivers msg
func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		ReplyTo: msg.ReplyTo,
		Subject: msg.Subject,
		Html:    msg.HTML,
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		return "", fmt.Errorf("resend: %w", err)
	}
	return sent.Id, nil
}

// ContactNotification builds the email sent to the site owner for c. Replies
// go to the visitor.
func ContactNotification(ctx context.Context, from, to string, c models.ContactSubmission) (Message, error) {
	var body strings.Builder
	if err := ContactBody(c).Render(ctx, &body); err != nil {
		return Message{}, fmt.Errorf("render contact email: %w", err)
	}

	return Message{
		From:    from,
		To:      to,
		ReplyTo: c.Email,
		Subject: "New Contact Form Submission from " + c.Name,
		HTML:    body.String(),
	}, nil
}

// ContactBody renders the notification body. All visitor input is escaped
// and message line breaks become <br>.
func ContactBody(c models.ContactSubmission) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		message := strings.ReplaceAll(c.Message, "\r\n", "\n")
		lines := strings.Split(message, "\n")
		escaped := make([]string, len(lines))
		for i, line := range lines {
			escaped[i] = templ.EscapeString(line)
		}

		_, err := fmt.Fprintf(w,
			"<h2>New Contact Form Submission</h2>"+
				"<p><strong>Name:</strong> %s</p>"+
				"<p><strong>Email:</strong> %s</p>"+
				"<p><strong>Message:</strong></p>"+
				"<p>%s</p>",
			templ.EscapeString(c.Name),
			templ.EscapeString(c.Email),
			strings.Join(escaped, "<br>"),
		)
		return err
	})
}
