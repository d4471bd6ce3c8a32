package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRequest covers malformed or conflicting input, including a
	// requested customer type that conflicts with the caller's role.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized covers missing, invalid, or expired tokens, and
	// cross-account access to another user's record.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden covers a role outside an operation's declared set, and
	// unexpected internal failures wrapped for the client.
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials is returned by authentication without revealing
	// whether the username or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")

	ErrUserNotFound     = errors.New("user not found")
	ErrCustomerNotFound = errors.New("customer not found")
	ErrUserExists       = errors.New("username or email already taken")
)

// WrapInternal converts an unexpected store failure into the Forbidden class
// with the original cause retained for diagnostics. The cause is logged at
// the boundary, never exposed to the caller.
func WrapInternal(err error) error {
	return fmt.Errorf("%w: %v", ErrForbidden, err)
}
