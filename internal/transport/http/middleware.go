package http

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/payremind/payment-reminder-backend/internal/apperr"
	"github.com/payremind/payment-reminder-backend/internal/domain"
	"github.com/payremind/payment-reminder-backend/internal/service"
)

const contextUserKey = "auth.user"

// RequireAuth verifies the bearer token and stashes the user in the request
// context. Any failure yields 401 before the handler runs.
func RequireAuth(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if strings.TrimSpace(authHeader) == "" {
				return apperr.Unauthorized("Not authorized, no token provided")
			}
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return apperr.Unauthorized("Not authorized, malformed authorization header")
			}
			user, err := auth.Authenticate(c.Request().Context(), strings.TrimSpace(parts[1]))
			if err != nil {
				return apperr.Unauthorized("Not authorized, token failed")
			}
			c.Set(contextUserKey, user)
			return next(c)
		}
	}
}

func CurrentUser(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(contextUserKey).(*domain.User)
	return user, ok
}
