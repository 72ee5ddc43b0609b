package ports

import (
	"context"
	"time"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

// SymptomRepository defines the interface for symptom-log persistence.
// Logs are insert-only; no update or delete is exposed.
type SymptomRepository interface {
	Insert(ctx context.Context, log *domain.SymptomLog) (*domain.SymptomLog, error)
	// FindByUser returns the user's logs newest first. When from/to are
	// non-nil they bound created_at (inclusive).
	FindByUser(ctx context.Context, userID string, from, to *time.Time) ([]domain.SymptomLog, error)
	// CreatedSince returns the creation timestamps of the user's logs at or
	// after the given instant.
	CreatedSince(ctx context.Context, userID string, since time.Time) ([]time.Time, error)
}
