package handler

import "github.com/aviiiii01/AI-Workflow/internal/core/domain"

type createWorkflowRequest struct {
	Name        string `json:"name" validate:"required,min=1"`
	Description string `json:"description"`
}

// updateWorkflowRequest is the allow-listed partial update body. Absent
// fields stay untouched; unknown keys are ignored by the JSON decoder.
// Ownership and timestamps have no corresponding field, so they cannot
// be overwritten through this endpoint.
type updateWorkflowRequest struct {
	Name        *string        `json:"name" validate:"omitempty,min=1"`
	Description *string        `json:"description"`
	Nodes       map[string]any `json:"nodes"`
	Edges       map[string]any `json:"edges"`
}

func (r updateWorkflowRequest) toUpdate() domain.WorkflowUpdate {
	upd := domain.WorkflowUpdate{
		Name:        r.Name,
		Description: r.Description,
	}
	if r.Nodes != nil {
		upd.Nodes = domain.JSONMap(r.Nodes)
	}
	if r.Edges != nil {
		upd.Edges = domain.JSONMap(r.Edges)
	}
	return upd
}
