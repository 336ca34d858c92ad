// Package services holds the business rules. Controllers translate HTTP
// to service calls; services decide, repositories persist.
package services

import "errors"

// Sentinel errors controllers map to HTTP status codes.
var (
	// ErrForbidden means the caller lacks the capability for the operation.
	ErrForbidden = errors.New("insufficient permissions")
	// ErrUnverifiedEmail means credentials were valid but the account's
	// email address has not been verified yet.
	ErrUnverifiedEmail = errors.New("unverified-email")
	// ErrInvalidCredentials covers unknown accounts and wrong passwords
	// without distinguishing the two.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrNoSession means an operation that needs a signed-in user was
	// called without one.
	ErrNoSession = errors.New("no active session")
	// ErrEmailTaken means registration hit an existing account.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidStatus means a moderation update named an unknown state.
	ErrInvalidStatus = errors.New("unknown article status")
)
