package ports

import "context"

// SequenceAllocator issues unique, monotonically increasing integers per named
// counter series.
//
// Guarantees:
//   - No value is ever returned twice for the same series.
//   - Values are strictly increasing in allocation order.
//   - A missing series is created implicitly; find-or-create-and-increment is
//     one indivisible operation from the caller's perspective.
//
// Allocation order does not imply persistence order: two concurrent callers
// may allocate N and N+1 and commit their orders in either order. A value
// allocated but never persisted stays unused permanently; gaps are acceptable,
// duplicates are not.
type SequenceAllocator interface {
	// Next returns the next value for the series. The first allocation of a
	// new series returns 1. Fails if the underlying store is unreachable, in
	// which case the caller must not proceed to persist anything that depends
	// on the value.
	Next(ctx context.Context, series string) (int64, error)
}
