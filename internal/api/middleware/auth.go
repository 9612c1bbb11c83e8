package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/agenda-universal/especialidades-api/internal/core/domain"
)

// TokenVerifier is the subset of the auth service the middleware depends on.
type TokenVerifier interface {
	Verify(token string) (*domain.Principal, error)
}

// Auth extracts the bearer token, verifies it, and injects the principal's
// username into the request context. Missing header, wrong scheme, and
// invalid or expired tokens all surface as the same 401.
func Auth(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			principal, err := verifier.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("username", principal.Username)

			return next(c)
		}
	}
}
