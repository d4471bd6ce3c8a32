package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesdesk/customer-management/internal/core/domain"
	"github.com/salesdesk/customer-management/internal/core/ports"
)

// AuthService validates credentials against the user store and delegates
// token issuance to the token service.
type AuthService struct {
	users  ports.UserRepository
	tokens ports.TokenService
	logger zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, logger zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

// Authenticate checks username/password and mints a bearer token. Unknown
// username and wrong password both fail with ErrInvalidCredentials so the
// caller cannot distinguish them.
func (s *AuthService) Authenticate(ctx context.Context, username, password string) (*domain.User, string, error) {
	if username == "" || password == "" {
		return nil, "", domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		s.logger.Error().Err(err).Msg("user lookup failed during login")
		return nil, "", domain.WrapInternal(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error().Err(err).Msg("token issuance failed")
		return nil, "", domain.WrapInternal(err)
	}

	s.logger.Info().Uint("user_id", user.ID).Str("role", string(user.Role)).Msg("login")
	return user, token, nil
}
