package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/aviiiii01/AI-Workflow/internal/api/metrics"
	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
	"github.com/aviiiii01/AI-Workflow/internal/core/ports"
)

const (
	defaultListLimit = 100
	maxListLimit     = 100
)

// WorkflowService implements owner-scoped CRUD over workflows. Scoping
// itself lives in the repository queries; this layer normalises inputs,
// stamps timestamps, and records metrics.
type WorkflowService struct {
	repo ports.WorkflowRepository
	log  zerolog.Logger
}

func NewWorkflowService(repo ports.WorkflowRepository, log zerolog.Logger) *WorkflowService {
	return &WorkflowService{repo: repo, log: log}
}

// Create persists a new workflow with empty node and edge graphs.
func (s *WorkflowService) Create(ctx context.Context, ownerID int64, name, description string) (*domain.Workflow, error) {
	now := time.Now().UTC()
	w := &domain.Workflow{
		Name:        name,
		Description: description,
		Nodes:       domain.JSONMap{},
		Edges:       domain.JSONMap{},
		CreatedAt:   now,
		UpdatedAt:   now,
		OwnerID:     ownerID,
	}

	created, err := s.repo.Create(ctx, w)
	if err != nil {
		s.log.Error().Err(err).Int64("owner_id", ownerID).Msg("failed to create workflow")
		return nil, err
	}

	metrics.WorkflowOperationsTotal.WithLabelValues("create").Inc()
	s.log.Info().Int64("workflow_id", created.ID).Int64("owner_id", ownerID).Msg("workflow created")
	return created, nil
}

func (s *WorkflowService) List(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Workflow, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 || limit > maxListLimit {
		limit = defaultListLimit
	}

	items, err := s.repo.ListByOwner(ctx, ownerID, skip, limit)
	if err != nil {
		return nil, err
	}
	metrics.WorkflowOperationsTotal.WithLabelValues("list").Inc()
	return items, nil
}

func (s *WorkflowService) Get(ctx context.Context, id, ownerID int64) (*domain.Workflow, error) {
	w, err := s.repo.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	metrics.WorkflowOperationsTotal.WithLabelValues("get").Inc()
	return w, nil
}

func (s *WorkflowService) Update(ctx context.Context, id, ownerID int64, upd domain.WorkflowUpdate) (*domain.Workflow, error) {
	if upd.Empty() {
		// Nothing to apply; still confirms existence and ownership.
		return s.repo.FindByID(ctx, id, ownerID)
	}

	w, err := s.repo.Update(ctx, id, ownerID, upd)
	if err != nil {
		return nil, err
	}
	metrics.WorkflowOperationsTotal.WithLabelValues("update").Inc()
	s.log.Info().Int64("workflow_id", id).Int64("owner_id", ownerID).Msg("workflow updated")
	return w, nil
}

func (s *WorkflowService) Delete(ctx context.Context, id, ownerID int64) (*domain.Workflow, error) {
	w, err := s.repo.Delete(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}
	metrics.WorkflowOperationsTotal.WithLabelValues("delete").Inc()
	s.log.Info().Int64("workflow_id", id).Int64("owner_id", ownerID).Msg("workflow deleted")
	return w, nil
}
