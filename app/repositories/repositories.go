// Package repositories is the persistence layer. Each repository is an
// interface with a Mongo-backed implementation so services can be tested
// against in-memory fakes.
package repositories

import "errors"

var (
	// ErrNotFound is returned when a document does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a unique constraint is violated.
	ErrDuplicate = errors.New("record already exists")
)
