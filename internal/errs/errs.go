// Package errs defines the closed failure taxonomy shared by the service and
// HTTP layers. Callers match with errors.Is; wrapping with %w is expected.
package errs

import "errors"

var (
	// ErrInvalidInput reports malformed arguments, detected before any write.
	ErrInvalidInput = errors.New("invalid input")
	// ErrDuplicateUsername reports a registration collision.
	ErrDuplicateUsername = errors.New("username already taken")
	// ErrAuthenticationFailed covers both unknown username and wrong password,
	// deliberately indistinguishable.
	ErrAuthenticationFailed = errors.New("authentication failed")
	// ErrPermissionDenied reports a non-admin attempting an admin operation.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrNotFound reports a missing user, product or order.
	ErrNotFound = errors.New("not found")
	// ErrEmptyCart reports order placement over an empty cart.
	ErrEmptyCart = errors.New("cart is empty")
	// ErrStorageUnavailable reports an infrastructure-level storage fault.
	ErrStorageUnavailable = errors.New("storage unavailable")
	// ErrCredential reports an internal password-hashing fault.
	ErrCredential = errors.New("credential error")
)
