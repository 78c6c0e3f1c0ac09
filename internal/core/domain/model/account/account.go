// Package account contains the bank-account details shown to customers for
// bank-transfer payment. A single record exists per deployment; when none has
// been configured yet, invoices and mails fall back to a placeholder triple.
package account

import (
	"errors"

	"solarstore/internal/pkg/errs"
	"solarstore/internal/pkg/guard"
)

var (
	ErrDetailsAreNotConstructed = errors.New("Details must be created via NewDetails or PlaceholderDetails constructor")
)

// placeholderValue is rendered when no account has been configured.
const placeholderValue = "Not available"

// Details is the bank-account triple included in invoices and order mail.
type Details struct {
	accountNumber string
	bankName      string
	accountName   string

	guard guard.ConstructorGuard
}

// NewDetails creates validated account details. All three fields are required.
func NewDetails(accountNumber, bankName, accountName string) (Details, error) {
	if accountNumber == "" {
		return Details{}, errs.NewValueIsRequiredError("accountNumber")
	}
	if bankName == "" {
		return Details{}, errs.NewValueIsRequiredError("bankName")
	}
	if accountName == "" {
		return Details{}, errs.NewValueIsRequiredError("accountName")
	}

	return Details{
		accountNumber: accountNumber,
		bankName:      bankName,
		accountName:   accountName,
		guard:         guard.NewConstructorGuard(),
	}, nil
}

// PlaceholderDetails returns the fallback triple used when no account record
// has been configured.
func PlaceholderDetails() Details {
	return Details{
		accountNumber: placeholderValue,
		bankName:      placeholderValue,
		accountName:   placeholderValue,
		guard:         guard.NewConstructorGuard(),
	}
}

// Validate ensures the details were created through a constructor.
func (d Details) Validate() error {
	return d.guard.Validate(ErrDetailsAreNotConstructed)
}

// AccountNumber returns the bank account number.
func (d Details) AccountNumber() string { return d.accountNumber }

// BankName returns the name of the bank.
func (d Details) BankName() string { return d.bankName }

// AccountName returns the account holder name.
func (d Details) AccountName() string { return d.accountName }
