// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"time"

	"solarstore/internal/core/domain/model/kernel"
	"solarstore/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// The unique index on OrderNumber is the last line of defense for number
// uniqueness: a violation means the counter handed out the same value twice.
type OrderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber string    `gorm:"type:varchar(32);uniqueIndex"`
	Name        string
	Email       string
	Phone       string
	Address     string
	Items       []ItemDTO       `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	TotalPrice  decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status      string          `gorm:"type:varchar(16);index"`
	CreatedAt   time.Time       `gorm:"index"`
	UpdatedAt   time.Time
}

// TableName overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// ItemDTO represents one cart line of a persisted order.
type ItemDTO struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	OrderID   uuid.UUID `gorm:"type:uuid;index"`
	Name      string
	UnitPrice decimal.Decimal `gorm:"type:numeric(14,2)"`
	Quantity  int
}

// TableName overrides GORM's default naming convention to use "order_items".
func (ItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	customer := aggregate.Customer()
	items := aggregate.Items()

	itemDTOs := make([]ItemDTO, 0, len(items))
	for _, item := range items {
		itemDTOs = append(itemDTOs, ItemDTO{
			OrderID:   aggregate.ID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	return OrderDTO{
		ID:          aggregate.ID().Bytes(),
		OrderNumber: aggregate.Number(),
		Name:        customer.Name(),
		Email:       customer.Email(),
		Phone:       customer.Phone(),
		Address:     customer.Address(),
		Items:       itemDTOs,
		TotalPrice:  aggregate.TotalPrice(),
		Status:      aggregate.Status().String(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate using RestoreOrder, which trusts the
// stored total instead of recomputing it.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.Name, dto.Email, dto.Phone, dto.Address)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, itemErr := order.NewItem(itemDTO.Name, itemDTO.UnitPrice, itemDTO.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, dto.OrderNumber, customer, items, dto.TotalPrice, status)
}
