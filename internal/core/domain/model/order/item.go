package order

import (
	"errors"
	"fmt"

	"solarstore/internal/pkg/errs"
	"solarstore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is one cart line: a product name, its unit price, and how many the
// customer ordered. Items are immutable value objects.
type Item struct {
	name      string
	unitPrice decimal.Decimal
	quantity  int

	guard guard.ConstructorGuard
}

// NewItem creates a validated cart line item.
// The name must be non-empty, the unit price strictly positive, and the
// quantity a positive integer.
func NewItem(name string, unitPrice decimal.Decimal, quantity int) (Item, error) {
	item := Item{guard: guard.NewConstructorGuard()}

	if name == "" {
		return Item{}, errs.NewValueIsRequiredError("item name")
	}
	if !unitPrice.IsPositive() {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"unitPrice",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}
	if quantity <= 0 {
		return Item{}, errs.NewValueIsInvalidErrorWithCause(
			"quantity",
			fmt.Errorf("%d is not greater than 0", quantity),
		)
	}

	item.name = name
	item.unitPrice = unitPrice
	item.quantity = quantity
	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// Name returns the product name.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the price of a single unit.
func (i Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Quantity returns how many units were ordered.
func (i Item) Quantity() int {
	return i.quantity
}

// Subtotal returns unitPrice * quantity.
func (i Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// TotalOf sums the subtotals of the given items.
// An empty slice sums to zero.
func TotalOf(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}
