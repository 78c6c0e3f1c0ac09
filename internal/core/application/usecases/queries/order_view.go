// Package queries contains read-side operations in the CQRS architecture.
// Query handlers bypass the domain aggregates and read projection rows
// straight from the database, returning view structs tailored to the API.
package queries

import (
	"context"
	"time"

	"solarstore/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderView is the read model of one order, including the timestamps the
// write-side aggregate does not carry.
type OrderView struct {
	ID          kernel.UUID
	OrderNumber string
	Name        string
	Email       string
	Phone       string
	Address     string
	Items       []ItemView
	TotalPrice  decimal.Decimal
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ItemView is one cart line of the read model.
type ItemView struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// scanOrderRows reads order projection rows produced by the shared column
// list (id, order_number, name, email, phone, address, total_price, status,
// created_at, updated_at).
func scanOrderRows(ctx context.Context, db *gorm.DB, stmt string, args ...any) ([]OrderView, error) {
	rows, err := db.WithContext(ctx).Raw(stmt, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderView, 0)
	for rows.Next() {
		var view OrderView
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&view.OrderNumber,
			&view.Name,
			&view.Email,
			&view.Phone,
			&view.Address,
			&view.TotalPrice,
			&view.Status,
			&view.CreatedAt,
			&view.UpdatedAt,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		view.ID = orderID
		view.Items = make([]ItemView, 0)
		orders = append(orders, view)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// attachItems loads the cart lines for the given order views in one query and
// distributes them by order id.
func attachItems(ctx context.Context, db *gorm.DB, orders []OrderView) error {
	if len(orders) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, view := range orders {
		raw := view.ID.Bytes()
		ids[i] = raw
		index[raw] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			name,
			unit_price,
			quantity
		FROM order_items
		WHERE order_id IN ?
		ORDER BY id
	`, ids).Rows()
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID uuid.UUID
		var item ItemView

		if err = rows.Scan(&orderID, &item.Name, &item.UnitPrice, &item.Quantity); err != nil {
			return err
		}

		if i, ok := index[orderID]; ok {
			orders[i].Items = append(orders[i].Items, item)
		}
	}

	return rows.Err()
}
