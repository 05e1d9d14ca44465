package mailer

import (
	"context"
	"errors"

	mailtpl "github.com/oksasatya/user-directory/pkg/mailer/templates"
)

// EmailJob is one outgoing message. Either Subject/Text/HTML are set directly
// or Template and Data are rendered into them by Build.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

// Sender delivers a rendered message.
type Sender interface {
	Send(ctx context.Context, to, subject, text, html string) error
}

var ErrNoRecipient = errors.New("mailer: job has no recipient")

// Build renders the job's template, if any, into Subject/Text/HTML.
func (j *EmailJob) Build() error {
	if j.To == "" {
		return ErrNoRecipient
	}
	if j.Template == "" {
		return nil
	}
	s, t, h, err := mailtpl.Render(j.Template, j.Data)
	if err != nil {
		return err
	}
	j.Subject, j.Text, j.HTML = s, t, h
	return nil
}
