package order

import (
	"fmt"

	"solarstore/internal/pkg/errs"
)

// numberWidth is the minimum width of a formatted order number. Sequences
// beyond 999999 simply grow wider; they are not truncated.
const numberWidth = 6

// NumberSeries is the counter series from which order numbers are allocated.
const NumberSeries = "orderNumber"

// FormatNumber renders an allocated sequence value as a zero-padded decimal
// order number, e.g. 42 -> "000042".
func FormatNumber(sequence int64) string {
	return fmt.Sprintf("%0*d", numberWidth, sequence)
}

// validateNumber checks that a number is a zero-padded decimal string of at
// least the fixed width. Used when reconstructing orders from persistence and
// when creating them.
func validateNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("orderNumber")
	}
	if len(number) < numberWidth {
		return errs.NewValueIsInvalidErrorWithCause(
			"orderNumber",
			fmt.Errorf("%q is shorter than %d digits", number, numberWidth),
		)
	}
	for _, r := range number {
		if r < '0' || r > '9' {
			return errs.NewValueIsInvalidErrorWithCause(
				"orderNumber",
				fmt.Errorf("%q contains a non-digit character", number),
			)
		}
	}
	return nil
}
