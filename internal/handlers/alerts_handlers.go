package handlers

import (
	"net/http"

	"modamart/internal/repositories"

	"github.com/labstack/echo/v4"
)

type AlertHandlers struct {
	alertRepo repositories.AlertRepository
}

func NewAlertHandlers(alertRepo repositories.AlertRepository) *AlertHandlers {
	return &AlertHandlers{alertRepo: alertRepo}
}

func (h *AlertHandlers) ListAlerts(c echo.Context) error {
	limit, offset := paginationParams(c)
	alerts, err := h.alertRepo.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list alerts")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"alerts": alerts,
		"limit":  limit,
		"offset": offset,
	})
}

// ListUnactionedAlerts returns alerts that no purchase order answers yet.
func (h *AlertHandlers) ListUnactionedAlerts(c echo.Context) error {
	alerts, err := h.alertRepo.ListUnactioned(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list alerts")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"alerts": alerts})
}
