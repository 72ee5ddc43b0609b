package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

type stubUserRepo struct {
	createFn        func(ctx context.Context, user *domain.User) (*domain.User, error)
	findByEmailFn   func(ctx context.Context, email string) (*domain.User, error)
	findByIDFn      func(ctx context.Context, id string) (*domain.User, error)
	findAllFn       func(ctx context.Context) ([]domain.User, error)
	updateRoleFn    func(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	updateProfileFn func(ctx context.Context, id, name, passwordHash string) (*domain.User, error)
	deleteFn        func(ctx context.Context, id string) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	return s.createFn(ctx, user)
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.findByEmailFn(ctx, email)
}

func (s *stubUserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return s.findByIDFn(ctx, id)
}

func (s *stubUserRepo) FindAll(ctx context.Context) ([]domain.User, error) {
	return s.findAllFn(ctx)
}

func (s *stubUserRepo) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	return s.updateRoleFn(ctx, id, role)
}

func (s *stubUserRepo) UpdateProfile(ctx context.Context, id, name, passwordHash string) (*domain.User, error) {
	return s.updateProfileFn(ctx, id, name, passwordHash)
}

func (s *stubUserRepo) Delete(ctx context.Context, id string) error {
	return s.deleteFn(ctx, id)
}

func mustHash(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return string(hash)
}

func TestAuthService_Register_Success(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			if user.Role != domain.RoleUser {
				t.Fatalf("expected default role USER, got %q", user.Role)
			}
			if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret123")) != nil {
				t.Fatalf("stored hash does not match password")
			}
			created := *user
			created.ID = "user-1"
			return &created, nil
		},
	}
	svc := NewAuthService(repo, tokens)

	token, user, err := svc.Register(context.Background(), "alice@example.com", "Alice", "secret123")
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if user.ID != "user-1" || user.Email != "alice@example.com" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != "user-1" || claims.Role != domain.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	repo := &stubUserRepo{
		createFn: func(ctx context.Context, user *domain.User) (*domain.User, error) {
			return nil, domain.ErrUserExists
		},
	}
	svc := NewAuthService(repo, NewTokenService("secret", time.Hour))

	if _, _, err := svc.Register(context.Background(), "alice@example.com", "Alice", "secret123"); !errors.Is(err, domain.ErrUserExists) {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	tokens := NewTokenService("secret", time.Hour)
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{
				ID:           "user-1",
				Email:        email,
				PasswordHash: mustHash(t, "secret123"),
				Role:         domain.RoleUser,
			}, nil
		},
	}
	svc := NewAuthService(repo, tokens)

	token, user, err := svc.Login(context.Background(), "alice@example.com", "secret123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if user.ID != "user-1" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Fatalf("token does not carry the login user id: %+v", claims)
	}
}

func TestAuthService_Login_WrongPassword(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "user-1", PasswordHash: mustHash(t, "secret123"), Role: domain.RoleUser}, nil
		},
	}
	svc := NewAuthService(repo, NewTokenService("secret", time.Hour))

	if _, _, err := svc.Login(context.Background(), "alice@example.com", "wrong-pass"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return nil, domain.ErrUserNotFound
		},
	}
	svc := NewAuthService(repo, NewTokenService("secret", time.Hour))

	// Unknown email collapses into the same error as a wrong password.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_NoPasswordHash(t *testing.T) {
	repo := &stubUserRepo{
		findByEmailFn: func(ctx context.Context, email string) (*domain.User, error) {
			return &domain.User{ID: "user-1", Role: domain.RoleUser}, nil
		},
	}
	svc := NewAuthService(repo, NewTokenService("secret", time.Hour))

	if _, _, err := svc.Login(context.Background(), "sso@example.com", "secret123"); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
