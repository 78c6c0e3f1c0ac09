package order

import (
	"fmt"

	"solarstore/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The lifecycle is deliberately unrestricted: any valid status may move to any
// other valid status, including reopening a canceled order. Support staff rely
// on this to undo mistaken cancellations, so only membership in the valid set
// is enforced, not a transition graph.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status of every newly placed order.
	// The customer has not yet been shipped their items.
	Pending

	// Shipped indicates the order has been dispatched to the customer.
	Shipped

	// Canceled indicates the order was called off. A canceled order may be
	// reopened by transitioning it back to Pending or Shipped.
	Canceled
)

// getStatusStrings returns a map of Status values to their wire representations.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:  "unknown",
		Pending:  "pending",
		Shipped:  "shipped",
		Canceled: "canceled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:  "pending",
		Shipped:  "shipped",
		Canceled: "canceled",
	}
}

// StatusFromString parses a wire-format status ("pending", "shipped",
// "canceled"). Any other value, including "unknown", is rejected.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"orderStatus",
		fmt.Errorf("%q is not a valid order status", s),
	)
}

// Validate checks that the Status is one of Pending, Shipped, Canceled.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderStatus",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}
