package mailer

import (
	"fmt"

	"timeshot/pkg/config"

	"gopkg.in/gomail.v2"
)

// Mailer delivers feedback messages to the fixed administrative address.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
	to     string
}

func New(cfg *config.Config) *Mailer {
	from := cfg.SMTPUser
	if from == "" {
		from = "noreply@timeshot.local"
	}

	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		from:   from,
		to:     cfg.FeedbackEmail,
	}
}

// SendFeedback formats and sends a single feedback message. The sender's
// address goes into Reply-To so admins can answer directly.
func (m *Mailer) SendFeedback(theme, name, email, message string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", m.to)
	msg.SetHeader("Reply-To", email)
	msg.SetHeader("Subject", "Website feedback")
	msg.SetBody("text/plain", fmt.Sprintf(
		"Theme: %s\nName: %s\nEmail: %s\nMessage: %s\n",
		theme, name, email, message,
	))

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send feedback mail: %w", err)
	}
	return nil
}
