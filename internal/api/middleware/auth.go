package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aviiiii01/AI-Workflow/internal/api/handler"
	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
	"github.com/aviiiii01/AI-Workflow/internal/core/ports"
)

// Auth resolves the caller from the Authorization: Bearer header and
// injects the matching user into the request context. It fails closed:
// any problem with the header, the token, or the account behind it is
// the same uniform 401 to the client.
func Auth(auth ports.AuthService, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			if header == "" {
				return domain.ErrUnauthenticated
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				log.Debug().Msg("malformed authorization header")
				return domain.ErrUnauthenticated
			}

			user, err := auth.CurrentUser(c.Request().Context(), parts[1])
			if err != nil {
				return err
			}

			handler.SetCurrentUser(c, user)
			return next(c)
		}
	}
}
