package ports

import (
	"context"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

// ProfileUpdate carries the optional fields of a self-profile update.
// Empty strings mean the field was not supplied.
type ProfileUpdate struct {
	Name            string
	Password        string
	CurrentPassword string
}

type UserService interface {
	List(ctx context.Context) ([]domain.User, error)
	UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error)
	UpdateProfile(ctx context.Context, id string, upd ProfileUpdate) (*domain.User, error)
	Delete(ctx context.Context, id string) error
}
