package queries

import (
	"context"

	"solarstore/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPendingOrdersQueryHandler retrieves unshipped orders from the database.
type GetPendingOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingOrdersQueryHandler creates a handler for pending order queries.
func NewGetPendingOrdersQueryHandler(db *gorm.DB) GetPendingOrdersQueryHandler {
	return GetPendingOrdersQueryHandler{db: db}
}

// Handle returns all pending orders, oldest first, so the digest surfaces
// the orders that have been waiting the longest.
func (h GetPendingOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetPendingOrdersQuery,
) ([]GetPendingOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			order_number,
			name,
			total_price,
			created_at
		FROM orders
		WHERE status = ?
		ORDER BY created_at
	`, order.Pending.String()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	pending := make([]GetPendingOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetPendingOrdersQueryResponse

		err = rows.Scan(&resp.OrderNumber, &resp.Name, &resp.TotalPrice, &resp.CreatedAt)
		if err != nil {
			return nil, err
		}

		pending = append(pending, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
