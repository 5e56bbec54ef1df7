package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/macetwatch/traffic-monitor/internal/core/domain"
)

// RequireRole rejects requests whose token role is not in the allowed set.
// It must run after Auth, which injects the role claim.
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}
			return next(c)
		}
	}
}

// RequireAdmin restricts a route to operators with the admin role.
func RequireAdmin() echo.MiddlewareFunc {
	return RequireRole(domain.RoleAdmin)
}
