package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
)

const workflowColumns = `id, name, description, nodes, edges, created_at, updated_at, owner_id`

type WorkflowRepository struct {
	db *sql.DB
}

func NewWorkflowRepository(db *sql.DB) *WorkflowRepository {
	return &WorkflowRepository{db: db}
}

func (r *WorkflowRepository) Create(ctx context.Context, w *domain.Workflow) (*domain.Workflow, error) {
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO workflows (name, description, nodes, edges, created_at, updated_at, owner_id)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		w.Name, w.Description, w.Nodes, w.Edges, w.CreatedAt.UnixNano(), w.UpdatedAt.UnixNano(), w.OwnerID,
	)
	if err != nil {
		return nil, fmt.Errorf("insert workflow: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}

	created := *w
	created.ID = id
	return &created, nil
}

// ListByOwner returns the owner's workflows ordered by id, which matches
// insertion order and keeps skip/limit pagination stable.
func (r *WorkflowRepository) ListByOwner(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Workflow, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+workflowColumns+` FROM workflows WHERE owner_id = ? ORDER BY id LIMIT ? OFFSET ?`,
		ownerID, limit, skip,
	)
	if err != nil {
		return nil, fmt.Errorf("list workflows: %w", err)
	}
	defer rows.Close()

	out := []*domain.Workflow{}
	for rows.Next() {
		w, err := scanWorkflow(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *WorkflowRepository) FindByID(ctx context.Context, id, ownerID int64) (*domain.Workflow, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+workflowColumns+` FROM workflows WHERE id = ? AND owner_id = ?`,
		id, ownerID,
	)
	w, err := scanWorkflow(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			// Missing and not-owned are deliberately indistinguishable.
			return nil, domain.ErrWorkflowNotFound
		}
		return nil, err
	}
	return w, nil
}

func (r *WorkflowRepository) Update(ctx context.Context, id, ownerID int64, upd domain.WorkflowUpdate) (*domain.Workflow, error) {
	set := make([]string, 0, 5)
	args := make([]any, 0, 7)

	if upd.Name != nil {
		set = append(set, "name = ?")
		args = append(args, *upd.Name)
	}
	if upd.Description != nil {
		set = append(set, "description = ?")
		args = append(args, *upd.Description)
	}
	if upd.Nodes != nil {
		set = append(set, "nodes = ?")
		args = append(args, upd.Nodes)
	}
	if upd.Edges != nil {
		set = append(set, "edges = ?")
		args = append(args, upd.Edges)
	}
	set = append(set, "updated_at = ?")
	args = append(args, time.Now().UTC().UnixNano())
	args = append(args, id, ownerID)

	query := "UPDATE workflows SET " + strings.Join(set, ", ") + " WHERE id = ? AND owner_id = ?"
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("update workflow: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrWorkflowNotFound
	}

	return r.FindByID(ctx, id, ownerID)
}

func (r *WorkflowRepository) Delete(ctx context.Context, id, ownerID int64) (*domain.Workflow, error) {
	snapshot, err := r.FindByID(ctx, id, ownerID)
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, `DELETE FROM workflows WHERE id = ? AND owner_id = ?`, id, ownerID)
	if err != nil {
		return nil, fmt.Errorf("delete workflow: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, domain.ErrWorkflowNotFound
	}
	return snapshot, nil
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanWorkflow(s scanner) (*domain.Workflow, error) {
	var (
		w         domain.Workflow
		createdAt int64
		updatedAt int64
	)
	err := s.Scan(&w.ID, &w.Name, &w.Description, &w.Nodes, &w.Edges, &createdAt, &updatedAt, &w.OwnerID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan workflow: %w", err)
	}
	w.CreatedAt = nanosToTime(createdAt)
	w.UpdatedAt = nanosToTime(updatedAt)
	return &w, nil
}
