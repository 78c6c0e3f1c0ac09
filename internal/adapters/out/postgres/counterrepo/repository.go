package counterrepo

import (
	"context"

	"solarstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormSequenceAllocator implements SequenceAllocator using GORM.
//
// It intentionally runs on the main connection, never inside a caller's
// transaction: an allocated value must stay consumed even when the caller
// rolls back, otherwise a later allocation could reuse it. Failed business
// transactions therefore leave gaps in the series, which is acceptable.
type GormSequenceAllocator struct {
	db *gorm.DB
}

// NewGormSequenceAllocator creates a new GORM sequence allocator.
func NewGormSequenceAllocator(db *gorm.DB) *GormSequenceAllocator {
	return &GormSequenceAllocator{db: db}
}

// Next atomically increments the series counter and returns the new value,
// creating the row with value 1 when the series does not exist yet. The
// find-or-create and the increment happen in one statement, so no two callers
// can ever receive the same value for a series.
func (a *GormSequenceAllocator) Next(ctx context.Context, series string) (int64, error) {
	if series == "" {
		return 0, errs.NewValueIsRequiredError("series")
	}

	var sequence int64
	err := a.db.WithContext(ctx).Raw(`
		INSERT INTO counters (id, sequence)
		VALUES (?, 1)
		ON CONFLICT (id) DO UPDATE SET sequence = counters.sequence + 1
		RETURNING sequence
	`, series).Scan(&sequence).Error
	if err != nil {
		return 0, err
	}

	return sequence, nil
}
