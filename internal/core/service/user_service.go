package service

import (
	"context"

	"golang.org/x/crypto/bcrypt"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

// UserService implements account listing, role changes, deletion, and
// self-profile updates.
type UserService struct {
	repo ports.UserRepository
}

func NewUserService(repo ports.UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.repo.FindAll(ctx)
}

func (s *UserService) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if !role.IsValid() {
		return nil, domain.ErrInvalidRole
	}
	return s.repo.UpdateRole(ctx, id, role)
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

// UpdateProfile applies a self-service name and/or password change.
//
// Password changes go through the safety sequence: the current password must
// be supplied, must match the stored hash, and the new password must differ
// from it. A request that changes nothing (no fields, or a name equal to the
// stored one) fails with domain.ErrNoChanges rather than silently succeeding.
// No write happens unless every check passes.
func (s *UserService) UpdateProfile(ctx context.Context, id string, upd ports.ProfileUpdate) (*domain.User, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	var name, passwordHash string

	if upd.Name != "" && upd.Name != existing.Name {
		name = upd.Name
	}

	if upd.Password != "" {
		if upd.CurrentPassword == "" {
			return nil, domain.ErrCurrentPasswordRequired
		}
		if bcrypt.CompareHashAndPassword([]byte(existing.PasswordHash), []byte(upd.CurrentPassword)) != nil {
			return nil, domain.ErrWrongCurrentPassword
		}
		if upd.Password == upd.CurrentPassword {
			return nil, domain.ErrSamePassword
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		passwordHash = string(hash)
	}

	if name == "" && passwordHash == "" {
		return nil, domain.ErrNoChanges
	}

	return s.repo.UpdateProfile(ctx, id, name, passwordHash)
}
