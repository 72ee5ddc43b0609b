package ports

import (
	"context"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

// UserRepository defines the interface for user persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindAll(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	// UpdateProfile sets the given fields on the user row. Empty strings
	// mean "leave unchanged"; validation upstream guarantees neither field
	// is legitimately empty.
	UpdateProfile(ctx context.Context, id, name, passwordHash string) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
