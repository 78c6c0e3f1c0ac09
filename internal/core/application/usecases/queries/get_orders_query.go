package queries

import (
	"errors"

	"solarstore/internal/pkg/guard"
)

const (
	defaultPage     = 1
	defaultPageSize = 10
	maxPageSize     = 100
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves a page of orders, optionally filtered by a
// substring of the order number.
//
// Example:
//
//	query := NewGetOrdersQuery(2, 10, "0004")
//	handler := NewGetOrdersQueryHandler(db)
//
//	result, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get orders: %w", err)
//	}
//
//	fmt.Printf("page %d of %d\n", result.CurrentPage, result.TotalPages)
type GetOrdersQuery struct {
	page     int
	pageSize int
	search   string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a paged order listing query. Out-of-range paging
// values are normalized rather than rejected: a page below 1 becomes 1, a
// page size below 1 becomes 10 and a page size above 100 is capped at 100.
func NewGetOrdersQuery(page int, pageSize int, search string) GetOrdersQuery {
	if page < defaultPage {
		page = defaultPage
	}
	if pageSize < 1 {
		pageSize = defaultPageSize
	}
	if pageSize > maxPageSize {
		pageSize = maxPageSize
	}

	return GetOrdersQuery{
		page:     page,
		pageSize: pageSize,
		search:   search,

		guard: guard.NewConstructorGuard(),
	}
}

func (q GetOrdersQuery) Page() int {
	return q.page
}

func (q GetOrdersQuery) PageSize() int {
	return q.pageSize
}

func (q GetOrdersQuery) Search() string {
	return q.search
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// GetOrdersQueryResponse is one page of the order listing together with the
// paging metadata the storefront renders.
type GetOrdersQueryResponse struct {
	Orders      []OrderView
	TotalPages  int
	CurrentPage int
}
