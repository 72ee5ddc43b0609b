package service

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

// AnalyticsCache abstracts the per-user analytics cache (Redis). Cache
// failures are never fatal; callers log and fall through to the store.
type AnalyticsCache interface {
	Get(ctx context.Context, userID string, year int) ([]domain.MonthlyCount, bool, error)
	Set(ctx context.Context, userID string, year int, counts []domain.MonthlyCount) error
	Invalidate(ctx context.Context, userID string, year int) error
}

type symptomService struct {
	repo  ports.SymptomRepository
	cache AnalyticsCache
	log   zerolog.Logger
}

// NewSymptomService returns a SymptomService implementation. cache may be nil,
// in which case every analytics call hits the store.
func NewSymptomService(repo ports.SymptomRepository, cache AnalyticsCache, log zerolog.Logger) ports.SymptomService {
	return &symptomService{repo: repo, cache: cache, log: log}
}

// Log persists one symptom submission with a summary drawn from the canned
// set and returns that summary.
func (s *symptomService) Log(ctx context.Context, userID, input string) (string, error) {
	summary := cannedSummaries[rand.Intn(len(cannedSummaries))]

	now := time.Now().UTC()
	entry := &domain.SymptomLog{
		UserID:    userID,
		Input:     input,
		Response:  summary,
		CreatedAt: now,
	}
	if _, err := s.repo.Insert(ctx, entry); err != nil {
		return "", fmt.Errorf("log symptom: %w", err)
	}

	// The new row changes this year's monthly counts.
	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, userID, now.Year()); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("analytics cache invalidation failed")
		}
	}

	s.log.Info().Str("user_id", userID).Msg("symptom logged")
	return summary, nil
}

// Logs returns the user's history, newest first, optionally restricted to the
// calendar day containing `day`.
func (s *symptomService) Logs(ctx context.Context, userID string, day *time.Time) ([]domain.SymptomLog, error) {
	var from, to *time.Time
	if day != nil {
		start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
		end := start.Add(24*time.Hour - time.Nanosecond)
		from, to = &start, &end
	}

	logs, err := s.repo.FindByUser(ctx, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("fetch symptom logs: %w", err)
	}
	return logs, nil
}

// Analytics buckets the user's logs for the current year into twelve Jan..Dec
// counts, serving from cache when possible.
func (s *symptomService) Analytics(ctx context.Context, userID string) ([]domain.MonthlyCount, error) {
	now := time.Now().UTC()
	year := now.Year()

	if s.cache != nil {
		counts, ok, err := s.cache.Get(ctx, userID, year)
		if err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("analytics cache read failed")
		} else if ok {
			return counts, nil
		}
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	timestamps, err := s.repo.CreatedSince(ctx, userID, yearStart)
	if err != nil {
		return nil, fmt.Errorf("fetch analytics: %w", err)
	}

	counts := bucketByMonth(timestamps)

	if s.cache != nil {
		if err := s.cache.Set(ctx, userID, year, counts); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("analytics cache write failed")
		}
	}
	return counts, nil
}

// bucketByMonth always yields twelve entries labeled Jan..Dec in order.
func bucketByMonth(timestamps []time.Time) []domain.MonthlyCount {
	perMonth := make(map[time.Month]int, 12)
	for _, ts := range timestamps {
		perMonth[ts.Month()]++
	}

	counts := make([]domain.MonthlyCount, 0, 12)
	for m := time.January; m <= time.December; m++ {
		counts = append(counts, domain.MonthlyCount{
			Date:  m.String()[:3],
			Count: perMonth[m],
		})
	}
	return counts
}
