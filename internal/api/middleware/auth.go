package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

// Context keys under which the auth gate stores the verified identity.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth is the request-level identity gate. It requires a well-formed
// `Authorization: Bearer <token>` header (absent or malformed → 401), then
// verifies the token (any verification failure, invalid or expired → 403)
// and attaches the user id and role to the echo context. Identity is taken
// from the token only; no other header or body field is trusted.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, "invalid or expired token")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
