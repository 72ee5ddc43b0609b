package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/healthtrack/symptom-tracker/internal/api/metrics"
	"github.com/healthtrack/symptom-tracker/internal/core/ports"
)

const dateParamLayout = "2006-01-02"

// SymptomHandler handles symptom logging, history, and analytics. Every
// route is self-scoped: the user id always comes from the verified token.
type SymptomHandler struct {
	service ports.SymptomService
}

func NewSymptomHandler(service ports.SymptomService) *SymptomHandler {
	return &SymptomHandler{service: service}
}

// Log records a symptom submission and returns the generated summary.
//
// @Summary      Log a symptom
// @Tags         symptoms
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      logSymptomRequest  true  "Symptom description"
// @Success      200   {object}  summaryResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/symptoms [post]
func (h *SymptomHandler) Log(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var req logSymptomRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	summary, err := h.service.Log(c.Request().Context(), userID, req.Input)
	if err != nil {
		return err
	}

	metrics.SymptomLogsCreatedTotal.Inc()
	return c.JSON(http.StatusOK, summaryResponse{Summary: summary})
}

// Logs returns the caller's symptom history, optionally limited to one day.
//
// @Summary      List own symptom logs
// @Tags         symptoms
// @Produce      json
// @Security     BearerAuth
// @Param        date  query     string  false  "Restrict to one day (YYYY-MM-DD)"
// @Success      200   {array}   domain.SymptomLog
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/symptoms/logs [get]
func (h *SymptomHandler) Logs(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	var day *time.Time
	if raw := c.QueryParam("date"); raw != "" {
		parsed, err := time.Parse(dateParamLayout, raw)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "date must be formatted as YYYY-MM-DD"})
		}
		day = &parsed
	}

	logs, err := h.service.Logs(c.Request().Context(), userID, day)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, logs)
}

// Analytics returns twelve Jan..Dec buckets of the caller's log counts for
// the current year.
//
// @Summary      Monthly symptom analytics
// @Tags         symptoms
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.MonthlyCount
// @Failure      401  {object}  map[string]string
// @Router       /api/symptoms/analytics [get]
func (h *SymptomHandler) Analytics(c echo.Context) error {
	userID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	counts, err := h.service.Analytics(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, counts)
}
