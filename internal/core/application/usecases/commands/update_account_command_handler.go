package commands

import (
	"context"
)

// UpdateAccountCommandHandler persists the deployment's bank-account record.
type UpdateAccountCommandHandler struct {
	uowFactory AccountUoWFactory
}

// NewUpdateAccountCommandHandler creates a handler for account updates.
func NewUpdateAccountCommandHandler(uowFactory AccountUoWFactory) UpdateAccountCommandHandler {
	return UpdateAccountCommandHandler{uowFactory: uowFactory}
}

// Handle creates or overwrites the single account record.
func (h *UpdateAccountCommandHandler) Handle(ctx context.Context, cmd UpdateAccountCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AccountRepository().Save(ctx, cmd.Details()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
