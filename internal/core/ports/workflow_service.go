package ports

import (
	"context"

	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
)

type WorkflowService interface {
	Create(ctx context.Context, ownerID int64, name, description string) (*domain.Workflow, error)
	List(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Workflow, error)
	Get(ctx context.Context, id, ownerID int64) (*domain.Workflow, error)
	Update(ctx context.Context, id, ownerID int64, upd domain.WorkflowUpdate) (*domain.Workflow, error)
	Delete(ctx context.Context, id, ownerID int64) (*domain.Workflow, error)
}
