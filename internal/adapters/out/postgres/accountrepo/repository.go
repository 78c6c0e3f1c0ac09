package accountrepo

import (
	"context"
	"errors"

	"solarstore/internal/core/domain/model/account"
	"solarstore/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAccountRepository implements AccountRepository using GORM.
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GORM bank account repository.
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// Get retrieves the configured account details.
func (r *GormAccountRepository) Get(ctx context.Context) (account.Details, error) {
	var dto AccountDTO
	err := r.db.WithContext(ctx).First(&dto, "id = ?", singletonID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return account.Details{}, errs.NewObjectNotFoundError("bankAccount", singletonID)
		}
		return account.Details{}, err
	}

	return toDomain(dto)
}

// Save creates or overwrites the single account record.
func (r *GormAccountRepository) Save(ctx context.Context, details account.Details) error {
	if err := details.Validate(); err != nil {
		return err
	}

	dto := fromDomain(details)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&dto).Error
}
