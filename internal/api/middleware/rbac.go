package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/stayinn/rating-gateway/internal/core/domain"
)

// RBAC admits the request only when the token role is one of roles. It must
// run after Auth; a request without claims is forbidden.
func RBAC(roles ...string) echo.MiddlewareFunc {
	permitted := make(map[string]bool, len(roles))
	for _, r := range roles {
		permitted[r] = true
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(ClaimsKey).(domain.JwtPayload)
			if !ok || !permitted[claims.Role] {
				return domain.ErrForbidden
			}
			return next(c)
		}
	}
}
