package ports

import (
	"context"

	"github.com/salesdesk/customer-management/internal/core/domain"
)

// AuthService validates credentials and mints bearer tokens.
type AuthService interface {
	// Authenticate fails with domain.ErrInvalidCredentials for unknown
	// username and wrong password alike.
	Authenticate(ctx context.Context, username, password string) (*domain.User, string, error)
}
