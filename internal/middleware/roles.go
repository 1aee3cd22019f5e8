package middleware

import (
	"net/http"

	"modamart/internal/common"
	"modamart/internal/models"

	"github.com/labstack/echo/v4"
)

// RequireRole allows the request through only if the caller holds one of
// the listed roles. Admins pass every check.
func RequireRole(roles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]bool, len(roles))
	for _, role := range roles {
		allowed[role] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, ok := common.GetUserRoleFromContext(c.Request().Context())
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing role in token")
			}
			if role == models.RoleAdmin || allowed[role] {
				return next(c)
			}
			return echo.NewHTTPError(http.StatusForbidden, "Insufficient role")
		}
	}
}
