package queries

import (
	"context"

	"solarstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetAccountQueryHandler reads the singleton bank account row.
type GetAccountQueryHandler struct {
	db *gorm.DB
}

// NewGetAccountQueryHandler creates a handler for bank account queries.
func NewGetAccountQueryHandler(db *gorm.DB) GetAccountQueryHandler {
	return GetAccountQueryHandler{db: db}
}

// Handle returns the configured account details. When no record has been
// created yet it returns errs.ErrObjectNotFound; the placeholder triple is
// reserved for the invoice and mail path, which must never fail.
func (h GetAccountQueryHandler) Handle(
	ctx context.Context,
	query GetAccountQuery,
) (GetAccountQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAccountQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			account_number,
			bank_name,
			account_name
		FROM bank_accounts
		LIMIT 1
	`).Rows()
	if err != nil {
		return GetAccountQueryResponse{}, err
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return GetAccountQueryResponse{}, err
		}
		return GetAccountQueryResponse{}, errs.NewObjectNotFoundError("bankAccount", 1)
	}

	var resp GetAccountQueryResponse
	err = rows.Scan(&resp.AccountNumber, &resp.BankName, &resp.AccountName)
	if err != nil {
		return GetAccountQueryResponse{}, err
	}

	return resp, nil
}
