package commands

import (
	"errors"

	"solarstore/internal/core/domain/model/account"
	"solarstore/internal/pkg/guard"
)

var (
	ErrUpdateAccountCommandIsNotConstructed = errors.New(
		"UpdateAccountCommand must be created via NewUpdateAccountCommand constructor",
	)
)

// UpdateAccountCommand represents a request to set the bank-account details
// shown to customers for bank-transfer payment.
type UpdateAccountCommand struct { //nolint:recvcheck //using for validation
	details account.Details

	guard guard.ConstructorGuard
}

// NewUpdateAccountCommand creates a command to update the account record.
// All three fields are required.
func NewUpdateAccountCommand(accountNumber, bankName, accountName string) (UpdateAccountCommand, error) {
	details, err := account.NewDetails(accountNumber, bankName, accountName)
	if err != nil {
		return UpdateAccountCommand{}, err
	}

	return UpdateAccountCommand{
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateAccountCommand) Validate() error {
	return c.guard.Validate(ErrUpdateAccountCommandIsNotConstructed)
}

// Details returns the validated account details.
func (c UpdateAccountCommand) Details() account.Details { return c.details }
