package queries

import (
	"errors"

	"solarstore/internal/pkg/guard"
)

var (
	ErrGetAccountQueryIsNotConstructed = errors.New(
		"GetAccountQuery must be created via NewGetAccountQuery constructor",
	)
)

// GetAccountQuery retrieves the bank account details shown on invoices.
type GetAccountQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAccountQuery creates a parameterless bank account query.
func NewGetAccountQuery() GetAccountQuery {
	return GetAccountQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAccountQuery) Validate() error {
	return q.guard.Validate(ErrGetAccountQueryIsNotConstructed)
}

// GetAccountQueryResponse carries the payment details of the shop.
type GetAccountQueryResponse struct {
	AccountNumber string
	BankName      string
	AccountName   string
}
