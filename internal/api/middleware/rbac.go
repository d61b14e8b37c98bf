package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/healthdesk/staff-directory/internal/api/metrics"
	"github.com/healthdesk/staff-directory/internal/core/domain"
	"github.com/healthdesk/staff-directory/internal/core/ports"
)

// RequireRole enforces role-based access control over the account resolved by
// Authenticate. The same guard gates every protected route, parameterized by
// the required role, so there are no per-endpoint inline checks to drift.
func RequireRole(guard ports.AuthService, required domain.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			account, _ := c.Get("account").(*domain.Account)
			if err := guard.Authorize(account, required); err != nil {
				metrics.AuthRejectionsTotal.WithLabelValues("forbidden").Inc()
				return err
			}
			return next(c)
		}
	}
}
