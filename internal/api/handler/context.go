package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/symptom-tracker/internal/api/middleware"
	"github.com/healthtrack/symptom-tracker/internal/core/domain"
)

// ctxIdentity extracts the identity injected by the Auth middleware and
// fast-fails before any service call. A missing user id means the middleware
// did not run (or the token carried no identity) — reject with 401 rather
// than pass an empty id downstream.
func ctxIdentity(c echo.Context) (userID string, role domain.Role, err error) {
	userID, _ = c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get(middleware.CtxRole).(domain.Role)
	return userID, role, nil
}
