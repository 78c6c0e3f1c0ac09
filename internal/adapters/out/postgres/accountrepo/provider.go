package accountrepo

import (
	"context"
	"errors"
	"log/slog"

	"solarstore/internal/core/domain/model/account"
	"solarstore/internal/pkg/errs"
)

// GormAccountProvider serves the current account details to the notification
// path. Unlike the repository it never fails: a missing record or an
// unreachable store yields the placeholder triple, because an order mail with
// "Not available" payment details still beats no mail at all.
type GormAccountProvider struct {
	repo   *GormAccountRepository
	logger *slog.Logger
}

// NewGormAccountProvider creates a provider on top of the account repository.
func NewGormAccountProvider(repo *GormAccountRepository, logger *slog.Logger) *GormAccountProvider {
	return &GormAccountProvider{repo: repo, logger: logger}
}

// Current returns the configured details or the placeholder triple.
func (p *GormAccountProvider) Current(ctx context.Context) account.Details {
	details, err := p.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, errs.ErrObjectNotFound) {
			p.logger.Error("failed to load bank account details, using placeholder", "error", err)
		}
		return account.PlaceholderDetails()
	}

	return details
}
