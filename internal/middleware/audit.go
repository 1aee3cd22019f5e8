package middleware

import (
	"errors"
	"fmt"
	"net/http"

	"modamart/internal/common"
	"modamart/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AuditMiddleware records every mutating request after it completes.
type AuditMiddleware struct {
	auditService services.AuditLogService
}

func NewAuditMiddleware(auditService services.AuditLogService) *AuditMiddleware {
	return &AuditMiddleware{auditService: auditService}
}

var auditedMethods = map[string]bool{
	http.MethodPost:   true,
	http.MethodPut:    true,
	http.MethodPatch:  true,
	http.MethodDelete: true,
}

func (m *AuditMiddleware) AuditRequest() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)

			method := c.Request().Method
			if !auditedMethods[method] {
				return err
			}

			ctx := c.Request().Context()
			var userPtr *uuid.UUID
			if userID, ok := common.GetUserIDFromContext(ctx); ok {
				userPtr = &userID
			}
			username, _ := common.GetUsernameFromContext(ctx)

			// The response status is not written yet when the handler
			// returns an error; echo's error handler runs after the
			// middleware chain. Derive it from the error instead.
			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var httpErr *echo.HTTPError
				if errors.As(err, &httpErr) {
					status = httpErr.Code
				}
			}

			details := fmt.Sprintf("status=%d ip=%s", status, c.RealIP())
			if err != nil {
				details = fmt.Sprintf("%s error=%v", details, err)
			}

			action := method + " " + c.Path()
			if logErr := m.auditService.Record(ctx, userPtr, username, action, "http_requests", c.Path(), details); logErr != nil {
				c.Logger().Errorf("Failed to record audit entry: %v", logErr)
			}

			return err
		}
	}
}
