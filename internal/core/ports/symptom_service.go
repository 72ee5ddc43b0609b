package ports

import (
	"context"
	"time"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

type SymptomService interface {
	// Log records one symptom submission and returns the generated summary.
	Log(ctx context.Context, userID, input string) (string, error)
	// Logs returns the user's log history, optionally restricted to the
	// calendar day containing `day`.
	Logs(ctx context.Context, userID string, day *time.Time) ([]domain.SymptomLog, error)
	// Analytics returns exactly twelve Jan..Dec buckets of the user's log
	// counts for the current year.
	Analytics(ctx context.Context, userID string) ([]domain.MonthlyCount, error)
}
