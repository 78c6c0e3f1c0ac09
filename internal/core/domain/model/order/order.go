package order

import (
	"errors"
	"fmt"

	"solarstore/internal/core/domain/model/kernel"
	"solarstore/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrCartIsEmpty is returned when an order is created with no line items.
	ErrCartIsEmpty = errors.New("cart must contain at least one item")
)

// Order is the aggregate root for one customer purchase.
//
// Invariants:
//   - The order number is a zero-padded decimal string, unique across all
//     orders and immutable once assigned.
//   - The total price equals the sum of unitPrice*quantity over the cart.
//   - The cart is non-empty and every item is valid.
//   - The status is always one of the valid lifecycle states; a new order
//     starts as Pending.
//
// Orders are created once with a pre-allocated number and mutate only through
// ChangeStatus. There is no deletion path.
type Order struct {
	id       kernel.UUID
	number   string
	customer Customer
	items    []Item
	total    decimal.Decimal
	status   Status

	isConstructed bool
}

// NewOrder creates a new pending order from a pre-allocated order number, a
// customer, and a non-empty cart. The submitted total must exactly equal the
// recomputed cart total; a mismatch is rejected, never corrected.
func NewOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	items []Item,
	submittedTotal decimal.Decimal,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	total := TotalOf(items)
	if !total.Equal(submittedTotal) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"totalPrice",
			fmt.Errorf("submitted total %s does not match cart total %s", submittedTotal, total),
		)
	}
	o.total = total

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid status and trusts the stored total.
func RestoreOrder(
	id kernel.UUID,
	number string,
	customer Customer,
	items []Item,
	total decimal.Decimal,
	status Status,
) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setCustomer(customer),
		o.setItems(items),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	o.total = total
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Call this when accepting orders across package boundaries.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Number returns the human-readable order number, e.g. "000042".
func (o *Order) Number() string {
	return o.number
}

// Customer returns the customer contact details.
func (o *Order) Customer() Customer {
	return o.customer
}

// Items returns a copy of the cart line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalPrice returns the verified order total.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// ChangeStatus moves the order to a new lifecycle status. Any valid status may
// move to any other valid status; only membership is checked.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	if err := validateNumber(number); err != nil {
		return err
	}
	o.number = number
	return nil
}

func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrCartIsEmpty
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
