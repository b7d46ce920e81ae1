// Package apperr holds the sentinel errors shared between the service layer
// and the HTTP boundary. Handlers match them with errors.Is to pick a status
// code; everything unmatched is treated as an internal failure.
package apperr

import "errors"

var (
	// ErrConflict signals a duplicate-key write (username already taken,
	// concurrent config insert on the same page/user pair).
	ErrConflict = errors.New("already exists")

	// ErrInvalidCredentials covers both unknown usernames and wrong
	// passwords. Callers must not be able to tell the two apart.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUnauthorized means the request carried no session token, or one
	// that failed signature or expiry checks.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound means no row matched the lookup.
	ErrNotFound = errors.New("not found")

	// ErrPersistence wraps failures of the underlying store.
	ErrPersistence = errors.New("persistence failure")
)
