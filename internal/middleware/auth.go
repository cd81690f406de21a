package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"sea-catering-backend/internal/apperr"
	"sea-catering-backend/internal/model"
	"sea-catering-backend/internal/service"
)

const (
	contextUserID = "user_id"
	contextRole   = "user_role"
)

// Authenticate verifies the Bearer token and stores the session identity in
// the request context. Requests without a valid token get a 401.
func Authenticate(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			const prefix = "Bearer "
			if !strings.HasPrefix(header, prefix) {
				return apperr.Unauthorized("missing bearer token")
			}

			claims, err := auth.VerifyToken(strings.TrimPrefix(header, prefix))
			if err != nil {
				return err
			}

			c.Set(contextUserID, claims.UserID)
			c.Set(contextRole, claims.Role)
			return next(c)
		}
	}
}

// RequireAdmin rejects non-admin sessions. Must run after Authenticate.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if Role(c) != model.RoleAdmin {
				return apperr.Forbidden("admin access required")
			}
			return next(c)
		}
	}
}

// Caller returns the authenticated identity stored by Authenticate.
func Caller(c echo.Context) service.Caller {
	return service.Caller{UserID: UserID(c), Role: Role(c)}
}

func UserID(c echo.Context) string {
	id, _ := c.Get(contextUserID).(string)
	return id
}

func Role(c echo.Context) model.Role {
	role, _ := c.Get(contextRole).(model.Role)
	return role
}
