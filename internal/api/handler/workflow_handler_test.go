package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/aviiiii01/AI-Workflow/internal/core/domain"
)

type stubWorkflowService struct {
	createFn func(ctx context.Context, ownerID int64, name, description string) (*domain.Workflow, error)
	listFn   func(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Workflow, error)
	getFn    func(ctx context.Context, id, ownerID int64) (*domain.Workflow, error)
	updateFn func(ctx context.Context, id, ownerID int64, upd domain.WorkflowUpdate) (*domain.Workflow, error)
	deleteFn func(ctx context.Context, id, ownerID int64) (*domain.Workflow, error)
}

func (s *stubWorkflowService) Create(ctx context.Context, ownerID int64, name, description string) (*domain.Workflow, error) {
	return s.createFn(ctx, ownerID, name, description)
}

func (s *stubWorkflowService) List(ctx context.Context, ownerID int64, skip, limit int) ([]*domain.Workflow, error) {
	return s.listFn(ctx, ownerID, skip, limit)
}

func (s *stubWorkflowService) Get(ctx context.Context, id, ownerID int64) (*domain.Workflow, error) {
	return s.getFn(ctx, id, ownerID)
}

func (s *stubWorkflowService) Update(ctx context.Context, id, ownerID int64, upd domain.WorkflowUpdate) (*domain.Workflow, error) {
	return s.updateFn(ctx, id, ownerID, upd)
}

func (s *stubWorkflowService) Delete(ctx context.Context, id, ownerID int64) (*domain.Workflow, error) {
	return s.deleteFn(ctx, id, ownerID)
}

// authedContext builds a context with the caller already resolved, as the
// Auth middleware would leave it.
func authedContext(e *echo.Echo, req *http.Request, rec *httptest.ResponseRecorder, userID int64) echo.Context {
	c := e.NewContext(req, rec)
	SetCurrentUser(c, &domain.User{ID: userID, Email: "owner@example.com", IsActive: true})
	return c
}

func TestWorkflowHandler_Create(t *testing.T) {
	e := newEcho()
	stub := &stubWorkflowService{
		createFn: func(_ context.Context, ownerID int64, name, description string) (*domain.Workflow, error) {
			if ownerID != 7 || name != "etl" || description != "nightly" {
				t.Fatalf("unexpected args: %d %s %s", ownerID, name, description)
			}
			return &domain.Workflow{ID: 1, Name: name, Description: description, Nodes: domain.JSONMap{}, Edges: domain.JSONMap{}, OwnerID: ownerID}, nil
		},
	}
	h := NewWorkflowHandler(stub)

	rec := httptest.NewRecorder()
	c := authedContext(e, jsonRequest(http.MethodPost, "/workflows/", `{"name":"etl","description":"nightly"}`), rec, 7)

	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	nodes, ok := resp["nodes"].(map[string]any)
	if !ok || len(nodes) != 0 {
		t.Fatalf("expected empty nodes object, got %v", resp["nodes"])
	}
}

func TestWorkflowHandler_Create_MissingName(t *testing.T) {
	e := newEcho()
	stub := &stubWorkflowService{
		createFn: func(context.Context, int64, string, string) (*domain.Workflow, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := NewWorkflowHandler(stub)

	c := authedContext(e, jsonRequest(http.MethodPost, "/workflows/", `{"description":"no name"}`), httptest.NewRecorder(), 7)

	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestWorkflowHandler_List_PassesPagination(t *testing.T) {
	e := newEcho()
	stub := &stubWorkflowService{
		listFn: func(_ context.Context, ownerID int64, skip, limit int) ([]*domain.Workflow, error) {
			if ownerID != 7 || skip != 3 || limit != 2 {
				t.Fatalf("unexpected args: owner=%d skip=%d limit=%d", ownerID, skip, limit)
			}
			return []*domain.Workflow{}, nil
		},
	}
	h := NewWorkflowHandler(stub)

	rec := httptest.NewRecorder()
	c := authedContext(e, httptest.NewRequest(http.MethodGet, "/workflows/?skip=3&limit=2", nil), rec, 7)

	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	// An empty result is a JSON array, not null.
	if got := rec.Body.String(); got != "[]\n" {
		t.Fatalf("expected bare empty array, got %q", got)
	}
}

func TestWorkflowHandler_List_BadQuery(t *testing.T) {
	e := newEcho()
	stub := &stubWorkflowService{
		listFn: func(context.Context, int64, int, int) ([]*domain.Workflow, error) {
			t.Fatal("should not be called")
			return nil, nil
		},
	}
	h := NewWorkflowHandler(stub)

	c := authedContext(e, httptest.NewRequest(http.MethodGet, "/workflows/?limit=abc", nil), httptest.NewRecorder(), 7)

	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestWorkflowHandler_Get_NotFoundPropagates(t *testing.T) {
	e := newEcho()
	stub := &stubWorkflowService{
		getFn: func(_ context.Context, id, ownerID int64) (*domain.Workflow, error) {
			if id != 12 || ownerID != 7 {
				t.Fatalf("unexpected args: id=%d owner=%d", id, ownerID)
			}
			return nil, domain.ErrWorkflowNotFound
		},
	}
	h := NewWorkflowHandler(stub)

	c := authedContext(e, httptest.NewRequest(http.MethodGet, "/workflows/12", nil), httptest.NewRecorder(), 7)
	c.SetParamNames("id")
	c.SetParamValues("12")

	if err := h.Get(c); !errors.Is(err, domain.ErrWorkflowNotFound) {
		t.Fatalf("expected ErrWorkflowNotFound, got %v", err)
	}
}

func TestWorkflowHandler_Get_NonNumericID(t *testing.T) {
	e := newEcho()
	h := NewWorkflowHandler(&stubWorkflowService{})

	c := authedContext(e, httptest.NewRequest(http.MethodGet, "/workflows/abc", nil), httptest.NewRecorder(), 7)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	err := h.Get(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestWorkflowHandler_Update_BuildsAllowListedUpdate(t *testing.T) {
	e := newEcho()
	stub := &stubWorkflowService{
		updateFn: func(_ context.Context, id, ownerID int64, upd domain.WorkflowUpdate) (*domain.Workflow, error) {
			if id != 3 || ownerID != 7 {
				t.Fatalf("unexpected args: id=%d owner=%d", id, ownerID)
			}
			if upd.Name == nil || *upd.Name != "renamed" {
				t.Fatalf("name not carried: %+v", upd)
			}
			if upd.Description != nil || upd.Edges != nil {
				t.Fatalf("absent fields must stay nil: %+v", upd)
			}
			if upd.Nodes == nil {
				t.Fatalf("nodes not carried: %+v", upd)
			}
			return &domain.Workflow{ID: id, Name: *upd.Name, Nodes: upd.Nodes, Edges: domain.JSONMap{}, OwnerID: ownerID}, nil
		},
	}
	h := NewWorkflowHandler(stub)

	// owner_id is not in the allow-list; the decoder drops it silently.
	body := `{"name":"renamed","nodes":{"n1":{}},"owner_id":999}`
	rec := httptest.NewRecorder()
	c := authedContext(e, jsonRequest(http.MethodPut, "/workflows/3", body), rec, 7)
	c.SetParamNames("id")
	c.SetParamValues("3")

	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestWorkflowHandler_Delete_ReturnsSnapshot(t *testing.T) {
	e := newEcho()
	stub := &stubWorkflowService{
		deleteFn: func(_ context.Context, id, ownerID int64) (*domain.Workflow, error) {
			return &domain.Workflow{ID: id, Name: "gone", Nodes: domain.JSONMap{}, Edges: domain.JSONMap{}, OwnerID: ownerID}, nil
		},
	}
	h := NewWorkflowHandler(stub)

	rec := httptest.NewRecorder()
	c := authedContext(e, httptest.NewRequest(http.MethodDelete, "/workflows/4", nil), rec, 7)
	c.SetParamNames("id")
	c.SetParamValues("4")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["name"] != "gone" {
		t.Fatalf("expected deleted snapshot, got %v", resp)
	}
}
