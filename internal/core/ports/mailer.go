package ports

import "context"

// MailMessage is one transactional email: a recipient, a subject, an HTML
// body, and optional file attachments. It exists only for the duration of a
// send attempt.
type MailMessage struct {
	To          string
	Subject     string
	HTML        string
	Attachments []string
}

// Mailer delivers a single message through an external mail transport.
// There is no built-in retry; callers decide whether a failure matters.
// Order placement and status updates treat delivery as best-effort and must
// never fail because the transport is down.
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
