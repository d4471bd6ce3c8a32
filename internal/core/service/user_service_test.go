package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/salesdesk/customer-management/internal/core/domain"
	"github.com/salesdesk/customer-management/internal/core/ports"
)

type stubUserRepo struct {
	users  map[uint]*domain.User
	nextID uint
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User), nextID: 1}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, existing := range r.users {
		if existing.Username == user.Username || existing.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	clone := cloneUser(user)
	clone.ID = r.nextID
	r.nextID++
	r.users[clone.ID] = cloneUser(clone)
	return clone, nil
}

func (r *stubUserRepo) FindAll(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) Update(_ context.Context, id uint, changes ports.UserChanges) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if changes.Username != nil {
		u.Username = *changes.Username
	}
	if changes.Email != nil {
		u.Email = *changes.Email
	}
	if changes.PasswordHash != nil {
		u.PasswordHash = *changes.PasswordHash
	}
	if changes.Role != nil {
		u.Role = *changes.Role
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) Delete(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	delete(r.users, id)
	return u, nil
}

func registerTestUser(t *testing.T, svc *UserService, username string, role domain.Role) *domain.User {
	t.Helper()
	user, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: username,
		Email:    username + "@example.com",
		Password: "Password@1",
		Role:     role,
	})
	if err != nil {
		t.Fatalf("register %s: %v", username, err)
	}
	return user
}

func TestUserService_Register_HashesPassword(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	user := registerTestUser(t, svc, "Duong", domain.RoleAdmin)
	if user.PasswordHash == "Password@1" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("Password@1")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUserService_Register_UnknownRole(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	_, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "eve", Email: "eve@example.com", Password: "Password@1", Role: "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidRequest) {
		t.Fatalf("expected ErrInvalidRequest, got %v", err)
	}
}

func TestUserService_Register_Duplicate(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())

	registerTestUser(t, svc, "Duong", domain.RoleAdmin)
	_, err := svc.Register(context.Background(), ports.RegisterUserInput{
		Username: "Duong", Email: "other@example.com", Password: "Password@1", Role: domain.RoleAdmin,
	})
	if !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestUserService_Get_SelfOrAdmin(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())
	admin := registerTestUser(t, svc, "Duong", domain.RoleAdmin)
	sale := registerTestUser(t, svc, "AnTrung", domain.RoleSaleCompany)

	ctx := context.Background()

	if _, err := svc.Get(ctx, domain.Principal{UserID: admin.ID, Role: domain.RoleAdmin}, sale.ID); err != nil {
		t.Fatalf("admin read: %v", err)
	}
	if _, err := svc.Get(ctx, domain.Principal{UserID: sale.ID, Role: sale.Role}, sale.ID); err != nil {
		t.Fatalf("self read: %v", err)
	}
	if _, err := svc.Get(ctx, domain.Principal{UserID: sale.ID, Role: sale.Role}, admin.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for cross-account read, got %v", err)
	}
}

func TestUserService_Get_NotFoundBeforePolicy(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())
	sale := registerTestUser(t, svc, "AnTrung", domain.RoleSaleCompany)

	// Id 99 does not exist: the caller would also fail the self-check, but
	// not-found must win.
	_, err := svc.Get(context.Background(), domain.Principal{UserID: sale.ID, Role: sale.Role}, 99)
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_Update_SelfOnly(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())
	admin := registerTestUser(t, svc, "Duong", domain.RoleAdmin)
	sale := registerTestUser(t, svc, "AnTrung", domain.RoleSaleCompany)

	ctx := context.Background()
	newName := "TrungAn"

	// Admin updating somebody else is still rejected.
	_, err := svc.Update(ctx, domain.Principal{UserID: admin.ID, Role: domain.RoleAdmin}, sale.ID, ports.UpdateUserInput{Username: &newName})
	if !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for admin on foreign account, got %v", err)
	}

	updated, err := svc.Update(ctx, domain.Principal{UserID: sale.ID, Role: sale.Role}, sale.ID, ports.UpdateUserInput{Username: &newName})
	if err != nil {
		t.Fatalf("self update: %v", err)
	}
	if updated.Username != "TrungAn" {
		t.Fatalf("username not applied: %q", updated.Username)
	}
}

func TestUserService_Update_RehashesPassword(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())
	user := registerTestUser(t, svc, "Duong", domain.RoleAdmin)

	newPassword := "Duong@update1"
	updated, err := svc.Update(context.Background(), domain.Principal{UserID: user.ID, Role: user.Role}, user.ID, ports.UpdateUserInput{Password: &newPassword})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.PasswordHash == newPassword {
		t.Fatalf("password stored in plaintext after update")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte(newPassword)); err != nil {
		t.Fatalf("updated hash does not match new password: %v", err)
	}
}

func TestUserService_Delete_SelfOnly(t *testing.T) {
	svc := NewUserService(newStubUserRepo(), zerolog.Nop())
	admin := registerTestUser(t, svc, "Duong", domain.RoleAdmin)
	sale := registerTestUser(t, svc, "AnTrung", domain.RoleSaleCompany)

	ctx := context.Background()

	if _, err := svc.Delete(ctx, domain.Principal{UserID: admin.ID, Role: domain.RoleAdmin}, sale.ID); !errors.Is(err, domain.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for admin deleting foreign account, got %v", err)
	}

	deleted, err := svc.Delete(ctx, domain.Principal{UserID: sale.ID, Role: sale.Role}, sale.ID)
	if err != nil {
		t.Fatalf("self delete: %v", err)
	}
	if deleted.ID != sale.ID {
		t.Fatalf("expected deleted record %d, got %d", sale.ID, deleted.ID)
	}
	if _, err := svc.Get(ctx, domain.Principal{UserID: admin.ID, Role: domain.RoleAdmin}, sale.ID); !errors.Is(err, domain.ErrUserNotFound) {
		t.Fatalf("record still present after delete: %v", err)
	}
}
