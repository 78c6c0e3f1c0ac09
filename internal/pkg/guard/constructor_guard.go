// Package guard implements a defensive construction pattern for value objects
// and commands. Embedding a ConstructorGuard in a struct makes zero-value
// instances detectable, so validation can reject objects that bypassed their
// constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is provided for an unconstructed object.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes properly constructed objects from zero values.
// The internal flag is only set by NewConstructorGuard, which constructors call;
// a struct created directly carries the zero guard and fails validation.
//
// Example usage:
//
//	type UpdateAccountCommand struct {
//	    accountNumber string
//	    guard         guard.ConstructorGuard
//	}
//
//	func NewUpdateAccountCommand(accountNumber string) (UpdateAccountCommand, error) {
//	    if accountNumber == "" {
//	        return UpdateAccountCommand{}, errs.NewValueIsRequiredError("accountNumber")
//	    }
//	    return UpdateAccountCommand{
//	        accountNumber: accountNumber,
//	        guard:         guard.NewConstructorGuard(),
//	    }, nil
//	}
//
//	func (c UpdateAccountCommand) Validate() error {
//	    return c.guard.Validate(ErrCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// constructed. Call it only from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns validationError, or ErrDefaultConstructorGuard when validationError
// is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
