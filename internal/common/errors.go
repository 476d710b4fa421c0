// Package common defines shared sentinel errors used across bookstore
// components. Callers should use errors.Is to match these values. The
// command processor collapses every one of them into the single protocol
// reply "Invalid"; the distinctions exist for internal flow control and
// for tests.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("already exists")

	// Authorization errors.
	ErrUnauthorized = errors.New("unauthorized")

	// Parse/validation errors.
	ErrMalformed = errors.New("malformed input")

	// Session stack errors.
	ErrEmptyStack  = errors.New("empty login stack")
	ErrNoSelection = errors.New("no book selected")
	ErrLoggedIn    = errors.New("account has an active login")

	// Inventory errors.
	ErrOutOfStock = errors.New("insufficient stock")
)
