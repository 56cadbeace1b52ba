package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
)

// userContextKey is where the Auth middleware stores the resolved caller.
const userContextKey = "current_user"

// SetCurrentUser stores the authenticated caller on the request context.
func SetCurrentUser(c echo.Context, u *domain.User) {
	c.Set(userContextKey, u)
}

// currentUser extracts the caller injected by the Auth middleware. Its
// presence proves the middleware ran; a protected handler reached
// without it is a routing bug, answered with a plain 401.
func currentUser(c echo.Context) (*domain.User, error) {
	u, _ := c.Get(userContextKey).(*domain.User)
	if u == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, domain.ErrUnauthenticated.Error())
	}
	return u, nil
}
