package ports

import (
	"context"

	"solarstore/internal/core/domain/model/account"
	"solarstore/internal/core/domain/model/order"
)

// InvoiceRenderer produces a printable invoice artifact from an order
// snapshot. The artifact is ephemeral: it lives in a request-scoped location
// and the caller discards it after the dispatch attempt completes, regardless
// of dispatch outcome.
type InvoiceRenderer interface {
	// Render writes the invoice document and returns its file path.
	Render(ctx context.Context, aggregate *order.Order, details account.Details) (string, error)

	// Discard removes a previously rendered artifact.
	Discard(path string) error
}
