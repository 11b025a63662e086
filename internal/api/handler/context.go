package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/stayinn/rating-gateway/internal/api/middleware"
	"github.com/stayinn/rating-gateway/internal/core/domain"
)

// ctxClaims returns the claims and raw token stored by the Auth middleware.
// A missing payload means the route was mounted without Auth; reject with 401
// rather than act on an anonymous request.
func ctxClaims(c echo.Context) (domain.JwtPayload, string, error) {
	claims, ok := c.Get(middleware.ClaimsKey).(domain.JwtPayload)
	if !ok || claims.Validate() != nil {
		return domain.JwtPayload{}, "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	token, _ := c.Get(middleware.TokenKey).(string)
	return claims, token, nil
}
