package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/salesdesk/customer-management/internal/api/metrics"
	"github.com/salesdesk/customer-management/internal/core/domain"
)

// RequireRoles enforces a static per-operation role declaration: the route
// table wraps each protected operation with the exact set of roles allowed
// to invoke it. Routes without a RequireRoles wrapper are public. Must run
// after Auth.
func RequireRoles(allowed ...domain.Role) echo.MiddlewareFunc {
	set := make(map[domain.Role]struct{}, len(allowed))
	for _, r := range allowed {
		set[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			principal, ok := PrincipalFrom(c)
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}
			if _, ok := set[principal.Role]; !ok {
				metrics.AccessDeniedTotal.WithLabelValues(string(principal.Role)).Inc()
				return echo.NewHTTPError(http.StatusForbidden, "role not permitted for this operation")
			}
			return next(c)
		}
	}
}
