package queries

import (
	"errors"
	"time"

	"solarstore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetPendingOrdersQueryIsNotConstructed = errors.New(
		"GetPendingOrdersQuery must be created via NewGetPendingOrdersQuery constructor",
	)
)

// GetPendingOrdersQuery retrieves all orders still awaiting shipment. The
// digest job uses it to remind the shop admin of open work.
type GetPendingOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingOrdersQuery creates a parameterless pending orders query.
func NewGetPendingOrdersQuery() GetPendingOrdersQuery {
	return GetPendingOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingOrdersQueryIsNotConstructed)
}

// GetPendingOrdersQueryResponse is one pending order line of the digest.
type GetPendingOrdersQueryResponse struct {
	OrderNumber string
	Name        string
	TotalPrice  decimal.Decimal
	CreatedAt   time.Time
}
