package handlers

import (
	"net/http"

	"modamart/internal/services"

	"github.com/labstack/echo/v4"
)

type AuditLogHandlers struct {
	auditService services.AuditLogService
}

func NewAuditLogHandlers(auditService services.AuditLogService) *AuditLogHandlers {
	return &AuditLogHandlers{auditService: auditService}
}

func (h *AuditLogHandlers) ListAuditLogs(c echo.Context) error {
	limit, offset := paginationParams(c)
	entries, err := h.auditService.List(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list audit logs")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"audit_logs": entries,
		"limit":      limit,
		"offset":     offset,
	})
}
