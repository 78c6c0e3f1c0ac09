package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrdersQueryHandler serves the paged order listing straight from the
// database, newest orders first.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for paged order listing queries.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the listing query. The search term, when present, matches
// any substring of the order number, case-insensitively. TotalPages reflects
// the filtered row count, so a search that matches nothing yields zero pages
// and an empty order slice.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) (GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	where := ""
	args := make([]any, 0, 3)
	if query.Search() != "" {
		where = "WHERE order_number ILIKE ?"
		args = append(args, "%"+query.Search()+"%")
	}

	var total int64
	err := h.db.WithContext(ctx).
		Raw("SELECT count(*) FROM orders "+where, args...).
		Scan(&total).Error
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	offset := (query.Page() - 1) * query.PageSize()
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
		`+where+`
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
	`, append(args, query.PageSize(), offset)...)
	if err != nil {
		return GetOrdersQueryResponse{}, err
	}

	if err = attachItems(ctx, h.db, orders); err != nil {
		return GetOrdersQueryResponse{}, err
	}

	pageSize := int64(query.PageSize())
	totalPages := int((total + pageSize - 1) / pageSize)

	return GetOrdersQueryResponse{
		Orders:      orders,
		TotalPages:  totalPages,
		CurrentPage: query.Page(),
	}, nil
}
