// Package accountrepo persists the bank account details shown on invoices.
// A deployment has at most one record, stored under a fixed primary key.
package accountrepo

import (
	"time"

	"solarstore/internal/core/domain/model/account"
)

// singletonID is the fixed primary key of the only bank account row.
const singletonID = 1

// AccountDTO represents the database structure for the bank account record.
type AccountDTO struct {
	ID            int16 `gorm:"primaryKey"`
	AccountNumber string
	BankName      string
	AccountName   string
	UpdatedAt     time.Time
}

// TableName overrides GORM's default naming convention to use "bank_accounts".
func (AccountDTO) TableName() string {
	return "bank_accounts"
}

// fromDomain converts account details to their database representation.
func fromDomain(details account.Details) AccountDTO {
	return AccountDTO{
		ID:            singletonID,
		AccountNumber: details.AccountNumber(),
		BankName:      details.BankName(),
		AccountName:   details.AccountName(),
	}
}

// toDomain converts a database DTO to validated account details.
func toDomain(dto AccountDTO) (account.Details, error) {
	return account.NewDetails(dto.AccountNumber, dto.BankName, dto.AccountName)
}
