package ports

import (
	"time"

	"github.com/salesdesk/customer-management/internal/core/domain"
)

// TokenClaims is the decoded payload of a verified bearer token: an identity
// snapshot plus the issuance window. Immutable once issued; expiry is the
// only invalidation mechanism.
type TokenClaims struct {
	UserID    uint
	Username  string
	Email     string
	Role      domain.Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// Principal converts the claims into the caller identity used by the access
// policy.
func (c TokenClaims) Principal() domain.Principal {
	return domain.Principal{
		UserID:   c.UserID,
		Username: c.Username,
		Email:    c.Email,
		Role:     c.Role,
	}
}

// TokenService issues and verifies signed bearer tokens.
type TokenService interface {
	Issue(user *domain.User) (string, error)
	// Verify fails with domain.ErrUnauthorized when the signature is
	// invalid, the token is malformed, or the token has expired.
	Verify(token string) (*TokenClaims, error)
}
