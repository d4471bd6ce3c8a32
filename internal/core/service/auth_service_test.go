package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/salesdesk/customer-management/internal/core/domain"
	"github.com/salesdesk/customer-management/internal/core/ports"
)

func newAuthFixture(t *testing.T) (*AuthService, *UserService, *TokenService) {
	t.Helper()
	repo := newStubUserRepo()
	tokens := NewTokenService("secret", time.Hour)
	users := NewUserService(repo, zerolog.Nop())
	auth := NewAuthService(repo, tokens, zerolog.Nop())
	return auth, users, tokens
}

func TestAuthService_Authenticate_Success(t *testing.T) {
	auth, users, tokens := newAuthFixture(t)

	if _, err := users.Register(context.Background(), ports.RegisterUserInput{
		Username: "Duong", Email: "duongnguyen@gmail.com", Password: "Duong@123", Role: domain.RoleAdmin,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	user, token, err := auth.Authenticate(context.Background(), "Duong", "Duong@123")
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if user.Username != "Duong" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if token == "" {
		t.Fatalf("expected token")
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("verify issued token: %v", err)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("token role %q does not match stored role admin", claims.Role)
	}
	if claims.UserID != user.ID {
		t.Fatalf("token subject %d does not match user %d", claims.UserID, user.ID)
	}
}

func TestAuthService_Authenticate_WrongPassword(t *testing.T) {
	auth, users, _ := newAuthFixture(t)

	if _, err := users.Register(context.Background(), ports.RegisterUserInput{
		Username: "An", Email: "an.trung@gmail.com", Password: "Matkhau@1122", Role: domain.RoleSaleCompany,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, err := auth.Authenticate(context.Background(), "An", "wrong-password")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_UnknownUser(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	_, _, err := auth.Authenticate(context.Background(), "ghost", "whatever")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Authenticate_FailureIsIndistinguishable(t *testing.T) {
	auth, users, _ := newAuthFixture(t)

	if _, err := users.Register(context.Background(), ports.RegisterUserInput{
		Username: "Tu", Email: "tu.vylam@gmail.com", Password: "Matkhau@1122", Role: domain.RoleSalePersonal,
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, _, unknownErr := auth.Authenticate(context.Background(), "nobody", "Matkhau@1122")
	_, _, wrongPassErr := auth.Authenticate(context.Background(), "Tu", "bad-password")

	if unknownErr.Error() != wrongPassErr.Error() {
		t.Fatalf("unknown-user and wrong-password must be indistinguishable: %q vs %q", unknownErr, wrongPassErr)
	}
}

func TestAuthService_Authenticate_EmptyInput(t *testing.T) {
	auth, _, _ := newAuthFixture(t)

	if _, _, err := auth.Authenticate(context.Background(), "", ""); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
