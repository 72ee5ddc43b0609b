package ports

import "github.com/healthtrack/symptom-tracker/internal/core/domain"

// TokenService issues and verifies the signed identity tokens clients carry
// between requests. Verification is all-or-nothing: either the full claims
// come back or an error does.
type TokenService interface {
	Issue(userID string, role domain.Role) (string, error)
	Verify(token string) (*domain.TokenClaims, error)
}
