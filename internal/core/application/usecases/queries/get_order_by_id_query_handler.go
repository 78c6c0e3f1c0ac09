package queries

import (
	"context"

	"solarstore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByIDQueryHandler loads one order projection by identifier.
type GetOrderByIDQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByIDQueryHandler creates a handler for single order lookups.
func NewGetOrderByIDQueryHandler(db *gorm.DB) GetOrderByIDQueryHandler {
	return GetOrderByIDQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no order
// with the given identifier exists.
func (h GetOrderByIDQueryHandler) Handle(
	ctx context.Context,
	query GetOrderByIDQuery,
) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	orders, err := scanOrderRows(ctx, h.db, `
		SELECT
			id,
			order_number,
			name,
			email,
			phone,
			address,
			total_price,
			status,
			created_at,
			updated_at
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes())
	if err != nil {
		return OrderView{}, err
	}

	if len(orders) == 0 {
		return OrderView{}, errs.NewObjectNotFoundError("orderId", query.OrderID())
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return OrderView{}, err
	}

	return orders[0], nil
}
