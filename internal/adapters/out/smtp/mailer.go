// Package smtp delivers transactional mail through an SMTP relay.
package smtp

import (
	"context"

	"solarstore/internal/core/ports"
	"solarstore/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP relay settings.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Validate checks that the transport can be constructed from the config.
func (c Config) Validate() error {
	if c.Host == "" {
		return errs.NewValueIsRequiredError("smtp host")
	}
	if c.Port <= 0 {
		return errs.NewValueIsInvalidError("smtp port")
	}
	if c.From == "" {
		return errs.NewValueIsRequiredError("smtp from address")
	}
	return nil
}

// GomailMailer implements Mailer over gomail's SMTP dialer. Each Send dials a
// fresh connection; order mail volume is low enough that connection reuse is
// not worth the bookkeeping.
type GomailMailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewGomailMailer creates a mailer from the given SMTP config.
func NewGomailMailer(cfg Config) (*GomailMailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &GomailMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
	}, nil
}

// Send delivers one message. The context is consulted before dialing; gomail
// itself does not support cancellation mid-send.
func (m *GomailMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" {
		return errs.NewValueIsRequiredError("recipient")
	}

	message := gomail.NewMessage()
	message.SetHeader("From", m.from)
	message.SetHeader("To", msg.To)
	message.SetHeader("Subject", msg.Subject)
	message.SetBody("text/html", msg.HTML)
	for _, attachment := range msg.Attachments {
		message.Attach(attachment)
	}

	return m.dialer.DialAndSend(message)
}
