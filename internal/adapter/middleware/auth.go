package middleware

import (
	"net/http"
	"strings"

	httpadp "koperasi-loan-service/internal/adapter/http"
	"koperasi-loan-service/internal/domain/actor"

	"github.com/labstack/echo/v4"
)

// Auth resolves the bearer token to an actor and parks it on the
// context. Missing token → 401, unknown/expired token → 403.
func Auth(sessions actor.SessionStore) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(raw, "Bearer ")
			token = strings.TrimSpace(token)
			if !ok || token == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}

			a, err := sessions.Resolve(c.Request().Context(), token)
			if err != nil {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "invalid session token"})
			}
			httpadp.SetActor(c, a)
			return next(c)
		}
	}
}
