package ports

import (
	"context"

	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
)

// WorkflowRepository defines persistence operations for workflows. Every
// method that takes an id also takes the owner id; implementations must
// filter by both so records of other users behave exactly like missing
// ones (domain.ErrWorkflowNotFound).
type WorkflowRepository interface {
	Create(ctx context.Context, w *domain.Workflow) (*domain.Workflow, error)
	ListByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Workflow, error)
	FindByID(ctx context.Context, id, ownerID int64) (*domain.Workflow, error)
	// Update applies the non-nil fields of upd and advances updated_at.
	Update(ctx context.Context, id, ownerID int64, upd domain.WorkflowUpdate) (*domain.Workflow, error)
	// Delete removes the workflow and returns its pre-deletion snapshot.
	Delete(ctx context.Context, id, ownerID int64) (*domain.Workflow, error)
}
