package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

type stubSymptomService struct {
	logFn       func(ctx context.Context, userID, input string) (string, error)
	logsFn      func(ctx context.Context, userID string, day *time.Time) ([]domain.SymptomLog, error)
	analyticsFn func(ctx context.Context, userID string) ([]domain.MonthlyCount, error)
}

func (s *stubSymptomService) Log(ctx context.Context, userID, input string) (string, error) {
	return s.logFn(ctx, userID, input)
}

func (s *stubSymptomService) Logs(ctx context.Context, userID string, day *time.Time) ([]domain.SymptomLog, error) {
	return s.logsFn(ctx, userID, day)
}

func (s *stubSymptomService) Analytics(ctx context.Context, userID string) ([]domain.MonthlyCount, error) {
	return s.analyticsFn(ctx, userID)
}

func TestSymptomHandler_Log_Success(t *testing.T) {
	stub := &stubSymptomService{
		logFn: func(ctx context.Context, userID, input string) (string, error) {
			if userID != "user-1" {
				t.Fatalf("expected token-derived id, got %q", userID)
			}
			return "🩺 Mild viral infection.", nil
		},
	}
	handler := NewSymptomHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/symptoms",
		`{"input":"persistent dry cough since monday"}`)
	asAuthenticated(c, "user-1", domain.RoleUser)

	if err := handler.Log(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["summary"] == "" {
		t.Fatalf("expected summary in response")
	}
}

func TestSymptomHandler_Log_InputTooShort(t *testing.T) {
	stub := &stubSymptomService{
		logFn: func(ctx context.Context, userID, input string) (string, error) {
			t.Fatalf("service must not be called on validation failure")
			return "", nil
		},
	}
	handler := NewSymptomHandler(stub)

	c, rec := newTestContext(t, http.MethodPost, "/api/symptoms", `{"input":"cough"}`)
	asAuthenticated(c, "user-1", domain.RoleUser)

	_ = handler.Log(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSymptomHandler_Logs_DateFilter(t *testing.T) {
	stub := &stubSymptomService{
		logsFn: func(ctx context.Context, userID string, day *time.Time) ([]domain.SymptomLog, error) {
			if day == nil {
				t.Fatalf("expected a day filter")
			}
			if day.Year() != 2026 || day.Month() != time.March || day.Day() != 14 {
				t.Fatalf("unexpected day: %v", day)
			}
			return []domain.SymptomLog{{ID: "log-1", UserID: userID}}, nil
		},
	}
	handler := NewSymptomHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/symptoms/logs?date=2026-03-14", "")
	asAuthenticated(c, "user-1", domain.RoleUser)

	if err := handler.Logs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestSymptomHandler_Logs_BadDate(t *testing.T) {
	stub := &stubSymptomService{
		logsFn: func(ctx context.Context, userID string, day *time.Time) ([]domain.SymptomLog, error) {
			t.Fatalf("service must not be called for a malformed date")
			return nil, nil
		},
	}
	handler := NewSymptomHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/symptoms/logs?date=14-03-2026", "")
	asAuthenticated(c, "user-1", domain.RoleUser)

	_ = handler.Logs(c)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestSymptomHandler_Analytics(t *testing.T) {
	stub := &stubSymptomService{
		analyticsFn: func(ctx context.Context, userID string) ([]domain.MonthlyCount, error) {
			counts := make([]domain.MonthlyCount, 0, 12)
			for m := time.January; m <= time.December; m++ {
				counts = append(counts, domain.MonthlyCount{Date: m.String()[:3]})
			}
			return counts, nil
		},
	}
	handler := NewSymptomHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/symptoms/analytics", "")
	asAuthenticated(c, "user-1", domain.RoleUser)

	if err := handler.Analytics(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var counts []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &counts); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(counts) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(counts))
	}
	if counts[0]["date"] != "Jan" || counts[11]["date"] != "Dec" {
		t.Fatalf("unexpected bucket labels: %v ... %v", counts[0]["date"], counts[11]["date"])
	}
}

func TestSymptomHandler_Analytics_NoIdentity(t *testing.T) {
	stub := &stubSymptomService{
		analyticsFn: func(ctx context.Context, userID string) ([]domain.MonthlyCount, error) {
			t.Fatalf("service must not be called without identity")
			return nil, nil
		},
	}
	handler := NewSymptomHandler(stub)

	c, rec := newTestContext(t, http.MethodGet, "/api/symptoms/analytics", "")

	if err := handler.Analytics(c); err != nil {
		c.Echo().HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
