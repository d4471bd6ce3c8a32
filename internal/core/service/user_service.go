package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesdesk/customer-management/internal/core/domain"
	"github.com/salesdesk/customer-management/internal/core/ports"
)

// UserService implements account management. Existence is always checked
// before the self-access rules so a missing id reports not-found rather than
// a policy failure.
type UserService struct {
	repo   ports.UserRepository
	logger zerolog.Logger
}

func NewUserService(repo ports.UserRepository, logger zerolog.Logger) *UserService {
	return &UserService{repo: repo, logger: logger}
}

// Register creates a new account with a bcrypt password hash. Uniqueness of
// username and email is enforced by the store's unique indexes.
func (s *UserService) Register(ctx context.Context, input ports.RegisterUserInput) (*domain.User, error) {
	if !domain.ValidRole(input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidRequest, input.Role)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.WrapInternal(err)
	}

	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         input.Role,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, domain.ErrUserExists) {
			return nil, err
		}
		s.logger.Error().Err(err).Msg("user create failed")
		return nil, domain.WrapInternal(err)
	}

	s.logger.Info().Uint("user_id", created.ID).Str("role", string(created.Role)).Msg("user registered")
	return created, nil
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("user list failed")
		return nil, domain.WrapInternal(err)
	}
	return users, nil
}

// Get returns the target account if the caller is admin or the account
// itself.
func (s *UserService) Get(ctx context.Context, caller domain.Principal, id uint) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookup(err, "user get failed")
	}
	if err := domain.CheckUserRead(caller, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// Update applies a partial profile update. Self only, regardless of role.
// A new password is bcrypt-hashed before it reaches the store.
func (s *UserService) Update(ctx context.Context, caller domain.Principal, id uint, input ports.UpdateUserInput) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookup(err, "user update lookup failed")
	}
	if err := domain.CheckUserMutation(caller, user.ID); err != nil {
		return nil, err
	}
	if input.Role != nil && !domain.ValidRole(*input.Role) {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidRequest, *input.Role)
	}

	changes := ports.UserChanges{
		Username: input.Username,
		Email:    input.Email,
		Role:     input.Role,
	}
	if input.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, domain.WrapInternal(err)
		}
		hashed := string(hash)
		changes.PasswordHash = &hashed
	}

	updated, err := s.repo.Update(ctx, id, changes)
	if err != nil {
		return nil, s.wrapLookup(err, "user update failed")
	}

	s.logger.Info().Uint("user_id", id).Msg("user updated")
	return updated, nil
}

// Delete removes the account. Self only, regardless of role.
func (s *UserService) Delete(ctx context.Context, caller domain.Principal, id uint) (*domain.User, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, s.wrapLookup(err, "user delete lookup failed")
	}
	if err := domain.CheckUserMutation(caller, user.ID); err != nil {
		return nil, err
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, s.wrapLookup(err, "user delete failed")
	}

	s.logger.Info().Uint("user_id", id).Msg("user deleted")
	return deleted, nil
}

// wrapLookup passes not-found through untouched and converts anything else
// into the internal-failure class.
func (s *UserService) wrapLookup(err error, msg string) error {
	if errors.Is(err, domain.ErrUserNotFound) {
		return err
	}
	s.logger.Error().Err(err).Msg(msg)
	return domain.WrapInternal(err)
}
