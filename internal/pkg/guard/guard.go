// Package guard enforces constructor usage for value objects, entities and commands.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as built through its constructor. The zero
// value reports "not constructed", so embedding a guard lets a type detect
// zero-value instances that skipped normalisation.
//
// Example:
//
//	type Client struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c *Client) Validate() error {
//	    return c.guard.Validate(ErrClientIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard in the constructed state.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, otherwise validationError
// (or ErrDefaultConstructorGuard when validationError is nil).
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
