// Package notifications coordinates the transactional emails sent around
// order events: the customer invoice, the admin new-order alert, the
// status-change notice, and the scheduled pending-orders digest.
//
// Every delivery here is best-effort. The order record is the source of truth
// and has already committed by the time a dispatcher method runs; failures in
// rendering or transport are logged and isolated per recipient, never
// propagated back to the caller.
package notifications

import (
	"context"
	"log/slog"

	"solarstore/internal/core/domain/model/order"
	"solarstore/internal/core/ports"
)

// Dispatcher sends order-related mail through the configured transport.
type Dispatcher struct {
	mailer     ports.Mailer
	renderer   ports.InvoiceRenderer
	accounts   ports.AccountProvider
	adminEmail string
	logger     *slog.Logger
}

// NewDispatcher creates a dispatcher. adminEmail is the recipient of the
// new-order and digest mails; an empty value disables admin mail.
func NewDispatcher(
	mailer ports.Mailer,
	renderer ports.InvoiceRenderer,
	accounts ports.AccountProvider,
	adminEmail string,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		mailer:     mailer,
		renderer:   renderer,
		accounts:   accounts,
		adminEmail: adminEmail,
		logger:     logger.With("component", "notifications"),
	}
}

// OrderPlaced sends the customer invoice mail with the rendered PDF attached,
// then the admin new-order alert. The invoice artifact is discarded after the
// customer dispatch attempt completes, whether or not delivery succeeded.
// Rendering failure downgrades the customer mail to attachment-free instead of
// suppressing it.
func (d *Dispatcher) OrderPlaced(ctx context.Context, aggregate *order.Order) {
	details := d.accounts.Current(ctx)

	invoicePath, err := d.renderer.Render(ctx, aggregate, details)
	if err != nil {
		d.logger.ErrorContext(ctx, "invoice rendering failed",
			"orderNumber", aggregate.Number(), "error", err)
		invoicePath = ""
	}

	customerMsg := ports.MailMessage{
		To:      aggregate.Customer().Email(),
		Subject: "Invoice - Order #" + aggregate.Number(),
		HTML:    invoiceBody(aggregate, details),
	}
	if invoicePath != "" {
		customerMsg.Attachments = []string{invoicePath}
	}

	if err := d.mailer.Send(ctx, customerMsg); err != nil {
		d.logger.ErrorContext(ctx, "customer invoice mail failed",
			"orderNumber", aggregate.Number(), "to", aggregate.Customer().Email(), "error", err)
	}

	if invoicePath != "" {
		if err := d.renderer.Discard(invoicePath); err != nil {
			d.logger.ErrorContext(ctx, "invoice artifact cleanup failed",
				"path", invoicePath, "error", err)
		}
	}

	if d.adminEmail == "" {
		return
	}

	adminMsg := ports.MailMessage{
		To:      d.adminEmail,
		Subject: "New Order Placed",
		HTML:    adminNewOrderBody(aggregate, details),
	}
	if err := d.mailer.Send(ctx, adminMsg); err != nil {
		d.logger.ErrorContext(ctx, "admin new-order mail failed",
			"orderNumber", aggregate.Number(), "to", d.adminEmail, "error", err)
	}
}

// StatusChanged notifies the customer that their order moved to a new status.
func (d *Dispatcher) StatusChanged(ctx context.Context, aggregate *order.Order) {
	msg := ports.MailMessage{
		To:      aggregate.Customer().Email(),
		Subject: "Order Status Update",
		HTML:    statusChangeBody(aggregate),
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		d.logger.ErrorContext(ctx, "status-change mail failed",
			"orderNumber", aggregate.Number(), "to", aggregate.Customer().Email(), "error", err)
	}
}

// DigestEntry is one row of the pending-orders digest mail.
type DigestEntry struct {
	Number       string
	CustomerName string
	TotalPrice   string
	PlacedAt     string
}

// PendingDigest mails the admin a summary of orders still awaiting shipment.
// Called by the scheduled digest job; a no-op when there is no admin address
// or nothing is pending.
func (d *Dispatcher) PendingDigest(ctx context.Context, entries []DigestEntry) {
	if d.adminEmail == "" || len(entries) == 0 {
		return
	}

	msg := ports.MailMessage{
		To:      d.adminEmail,
		Subject: "Pending Orders Digest",
		HTML:    digestBody(entries),
	}
	if err := d.mailer.Send(ctx, msg); err != nil {
		d.logger.ErrorContext(ctx, "pending-orders digest mail failed",
			"to", d.adminEmail, "error", err)
	}
}
