package ports

import (
	"context"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

type AuthService interface {
	Register(ctx context.Context, email, name, password string) (string, *domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}
