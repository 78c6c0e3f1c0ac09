package order

import (
	"errors"

	"solarstore/internal/pkg/errs"
	"solarstore/internal/pkg/guard"
)

var (
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")
)

// Customer holds the contact and shipping details attached to an order.
// All four fields are required.
type Customer struct {
	name    string
	email   string
	phone   string
	address string

	guard guard.ConstructorGuard
}

// NewCustomer creates a validated customer value object.
func NewCustomer(name, email, phone, address string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("name")
	}
	if email == "" {
		return Customer{}, errs.NewValueIsRequiredError("email")
	}
	if phone == "" {
		return Customer{}, errs.NewValueIsRequiredError("phone")
	}
	if address == "" {
		return Customer{}, errs.NewValueIsRequiredError("address")
	}

	return Customer{
		name:    name,
		email:   email,
		phone:   phone,
		address: address,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the customer was created through NewCustomer.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's full name.
func (c Customer) Name() string { return c.name }

// Email returns the address order mail is sent to.
func (c Customer) Email() string { return c.email }

// Phone returns the customer's phone number.
func (c Customer) Phone() string { return c.phone }

// Address returns the shipping address.
func (c Customer) Address() string { return c.address }
