package ports

import (
	"context"

	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
)

// UserRepository defines the persistence contract for user accounts.
type UserRepository interface {
	// Create persists a new user and returns it with its generated id.
	// Returns domain.ErrEmailTaken when the email is already registered.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	// FindByEmail returns domain.ErrUserNotFound when no account exists.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id int64) (*domain.User, error)
}
