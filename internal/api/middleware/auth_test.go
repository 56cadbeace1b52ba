package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
)

type stubAuthService struct {
	currentUserFn func(ctx context.Context, token string) (*domain.User, error)
}

func (s *stubAuthService) Register(context.Context, string, string) (*domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) Login(context.Context, string, string) (string, *domain.User, error) {
	panic("not used")
}

func (s *stubAuthService) CurrentUser(ctx context.Context, token string) (*domain.User, error) {
	return s.currentUserFn(ctx, token)
}

func newAuthContext(t *testing.T, authorization string) echo.Context {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authorization != "" {
		req.Header.Set(echo.HeaderAuthorization, authorization)
	}
	return e.NewContext(req, httptest.NewRecorder())
}

func TestAuth_ValidToken(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(_ context.Context, token string) (*domain.User, error) {
			if token != "good-token" {
				t.Fatalf("unexpected token: %q", token)
			}
			return &domain.User{ID: 42, Email: "alice@example.com"}, nil
		},
	}
	c := newAuthContext(t, "Bearer good-token")

	called := false
	mw := Auth(stub, zerolog.Nop())
	err := mw(func(c echo.Context) error {
		called = true
		u, _ := c.Get("current_user").(*domain.User)
		if u == nil || u.ID != 42 {
			t.Fatalf("user not injected: %+v", u)
		}
		return c.NoContent(http.StatusOK)
	})(c)

	if err != nil {
		t.Fatalf("middleware error: %v", err)
	}
	if !called {
		t.Fatal("next not called")
	}
}

func TestAuth_MissingHeader(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(context.Context, string) (*domain.User, error) {
			t.Fatal("service must not be called without a header")
			return nil, nil
		},
	}
	c := newAuthContext(t, "")

	err := Auth(stub, zerolog.Nop())(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})(c)

	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuth_WrongScheme(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(context.Context, string) (*domain.User, error) {
			t.Fatal("service must not be called for a non-bearer scheme")
			return nil, nil
		},
	}
	c := newAuthContext(t, "Basic dXNlcjpwYXNz")

	err := Auth(stub, zerolog.Nop())(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})(c)

	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}

func TestAuth_RejectedToken(t *testing.T) {
	stub := &stubAuthService{
		currentUserFn: func(context.Context, string) (*domain.User, error) {
			return nil, domain.ErrUnauthenticated
		},
	}
	c := newAuthContext(t, "Bearer forged")

	err := Auth(stub, zerolog.Nop())(func(c echo.Context) error {
		t.Fatal("should not reach next")
		return nil
	})(c)

	if !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected ErrUnauthenticated, got %v", err)
	}
}
