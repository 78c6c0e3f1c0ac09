package ports

import (
	"context"

	"solarstore/internal/core/domain/model/account"
)

// AccountRepository persists the single bank-account record of the deployment.
type AccountRepository interface {
	// Get returns the configured account details, or an
	// errs.ObjectNotFoundError when none have been saved yet.
	Get(ctx context.Context) (account.Details, error)

	// Save creates or overwrites the account record.
	Save(ctx context.Context, details account.Details) error
}

// AccountProvider exposes the current bank-account details for inclusion in
// invoices and order mail. Implementations never fail: when no record is
// configured or the store is unreachable, the placeholder triple is returned.
type AccountProvider interface {
	Current(ctx context.Context) account.Details
}
