package mailer

import (
	"context"
	"time"

	"blueprint-api/internal/pkg/config"
	"blueprint-api/internal/pkg/errs"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"gopkg.in/gomail.v2"
)

// SMTPSender delivers rendered emails over SMTP with exponential-backoff
// retries. Transient dial or send failures are retried until the configured
// elapsed budget runs out; the scheduler treats whatever comes back as the
// job's terminal outcome for this run.
type SMTPSender struct {
	dialer     *gomail.Dialer
	from       string
	maxElapsed time.Duration
}

func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	return &SMTPSender{
		dialer:     gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.Username, cfg.Password),
		from:       cfg.From,
		maxElapsed: cfg.MaxElapsed,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, htmlBody string) (string, error) {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	// gomail does not expose a provider message id; generate one for log
	// correlation.
	messageID := uuid.NewString()
	m.SetHeader("Message-ID", "<"+messageID+"@"+s.dialer.Host+">")

	operation := func() error {
		return s.dialer.DialAndSend(m)
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxElapsedTime = s.maxElapsed

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return "", errs.Wrap(err, "smtp send failed")
	}
	return messageID, nil
}
