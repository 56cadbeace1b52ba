package ports

import (
	"context"

	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
)

type AuthService interface {
	// Register creates an account. Fails with domain.ErrEmailTaken when
	// the email is already registered.
	Register(ctx context.Context, email, password string) (*domain.User, error)
	// Login verifies credentials and issues a signed bearer token. A
	// missing account and a wrong password are indistinguishable: both
	// fail with domain.ErrInvalidCredentials.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	// CurrentUser resolves a bearer token to the account it was issued
	// for. Any failure collapses to domain.ErrUnauthenticated.
	CurrentUser(ctx context.Context, token string) (*domain.User, error)
}
