package commands

import (
	"errors"
	"fmt"

	"solarstore/internal/pkg/errs"
	"solarstore/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// CartItem is one raw cart line as submitted by the client.
// Value-object construction and validation happen in the domain; the command
// only checks the raw shape.
type CartItem struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
}

// PlaceOrderCommand represents a request to place a new customer order.
// Carries the customer contact details, the cart, and the client-submitted
// total that the handler verifies against the recomputed cart total.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(
//	    "Ada Obi", "ada@example.com", "+2348000000000", "1 Marina Rd, Lagos",
//	    []CartItem{{Name: "Panel", UnitPrice: decimal.NewFromInt(1000), Quantity: 2}},
//	    decimal.NewFromInt(2000),
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid order request: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	name       string
	email      string
	phone      string
	address    string
	items      []CartItem
	totalPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command to place an order.
// Validates that every customer field is present, the cart is non-empty, and
// each cart line has a name, a positive unit price, and a positive quantity.
// The total itself is verified later by the handler, before any sequence
// value is consumed.
func NewPlaceOrderCommand(
	name, email, phone, address string,
	items []CartItem,
	totalPrice decimal.Decimal,
) (PlaceOrderCommand, error) {
	cmd := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setEmail(email),
		cmd.setPhone(phone),
		cmd.setAddress(address),
		cmd.setItems(items),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	cmd.totalPrice = totalPrice
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// Name returns the customer's full name.
func (c PlaceOrderCommand) Name() string { return c.name }

// Email returns the customer's email address.
func (c PlaceOrderCommand) Email() string { return c.email }

// Phone returns the customer's phone number.
func (c PlaceOrderCommand) Phone() string { return c.phone }

// Address returns the shipping address.
func (c PlaceOrderCommand) Address() string { return c.address }

// Items returns the raw cart lines.
func (c PlaceOrderCommand) Items() []CartItem { return c.items }

// TotalPrice returns the client-submitted order total.
func (c PlaceOrderCommand) TotalPrice() decimal.Decimal { return c.totalPrice }

func (c *PlaceOrderCommand) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	c.name = name
	return nil
}

func (c *PlaceOrderCommand) setEmail(email string) error {
	if email == "" {
		return errs.NewValueIsRequiredError("email")
	}
	c.email = email
	return nil
}

func (c *PlaceOrderCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	c.phone = phone
	return nil
}

func (c *PlaceOrderCommand) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	c.address = address
	return nil
}

func (c *PlaceOrderCommand) setItems(items []CartItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("cart")
	}
	for i, item := range items {
		if item.Name == "" {
			return errs.NewValueIsRequiredErrorWithCause(
				"cart", fmt.Errorf("item %d has no name", i))
		}
		if !item.UnitPrice.IsPositive() {
			return errs.NewValueIsInvalidErrorWithCause(
				"cart", fmt.Errorf("item %d has non-positive unit price %s", i, item.UnitPrice))
		}
		if item.Quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				"cart", fmt.Errorf("item %d has non-positive quantity %d", i, item.Quantity))
		}
	}
	c.items = make([]CartItem, len(items))
	copy(c.items, items)
	return nil
}
