// Package counterrepo implements the sequence allocator over a Postgres
// counters table. Each named series occupies one row; allocation is a single
// upsert statement, so concurrent callers never observe the same value.
package counterrepo

// CounterDTO represents one named counter series.
type CounterDTO struct {
	ID       string `gorm:"type:varchar(64);primaryKey"`
	Sequence int64
}

// TableName overrides GORM's default naming convention to use "counters".
func (CounterDTO) TableName() string {
	return "counters"
}
