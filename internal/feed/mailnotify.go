package feed

import (
	"context"
	"fmt"

	"leadsync_backend/internal/leads/transport"

	"github.com/wneessen/go-mail"
)

// MailNotifier delivers lead notifications over SMTP.
type MailNotifier struct {
	client *mail.Client
	from   string
	to     string
}

// SMTPSettings configures the mail notifier.
type SMTPSettings struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	From     string `yaml:"from"`
	To       string `yaml:"to"`
}

// NewMailNotifier creates an SMTP-backed notifier.
func NewMailNotifier(settings SMTPSettings) (*MailNotifier, error) {
	client, err := mail.NewClient(settings.Host,
		mail.WithPort(settings.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(settings.Username),
		mail.WithPassword(settings.Password),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create smtp client: %w", err)
	}
	return &MailNotifier{client: client, from: settings.From, to: settings.To}, nil
}

// Notify sends the lead as a plain-text mail.
func (n *MailNotifier) Notify(ctx context.Context, lead transport.LeadResponse) error {
	msg := mail.NewMsg()
	if err := msg.From(n.from); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.To(n.to); err != nil {
		return fmt.Errorf("invalid to address: %w", err)
	}
	msg.Subject(NotificationTitle(lead))
	msg.SetBodyString(mail.TypeTextPlain, NotificationBody(lead))

	if err := n.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("failed to send notification mail: %w", err)
	}
	return nil
}
