package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/aviiiii01/AI-Workflow/internal/core/ports"
)

// WorkflowHandler handles HTTP requests for workflow CRUD. All routes
// sit behind the Auth middleware; every service call is scoped to the
// caller resolved from the bearer token.
type WorkflowHandler struct {
	service ports.WorkflowService
}

func NewWorkflowHandler(service ports.WorkflowService) *WorkflowHandler {
	return &WorkflowHandler{service: service}
}

// Create handles POST /workflows/.
//
// @Summary      Create a workflow
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createWorkflowRequest  true  "Workflow details"
// @Success      201   {object}  domain.Workflow
// @Failure      401   {object}  map[string]string
// @Failure      422   {object}  map[string]string
// @Router       /workflows/ [post]
func (h *WorkflowHandler) Create(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	w, err := h.service.Create(c.Request().Context(), user.ID, req.Name, req.Description)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, w)
}

// List handles GET /workflows/ with optional skip/limit query parameters.
//
// @Summary      List the caller's workflows
// @Tags         workflows
// @Produce      json
// @Security     BearerAuth
// @Param        skip   query     int  false  "Rows to skip"    default(0)
// @Param        limit  query     int  false  "Max rows"        default(100)
// @Success      200    {array}   domain.Workflow
// @Failure      401    {object}  map[string]string
// @Router       /workflows/ [get]
func (h *WorkflowHandler) List(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	skip, err := queryInt(c, "skip", 0)
	if err != nil {
		return err
	}
	limit, err := queryInt(c, "limit", 100)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), user.ID, skip, limit)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Get handles GET /workflows/:id.
//
// @Summary      Get a workflow
// @Tags         workflows
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Workflow id"
// @Success      200  {object}  domain.Workflow
// @Failure      404  {object}  map[string]string
// @Router       /workflows/{id} [get]
func (h *WorkflowHandler) Get(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	w, err := h.service.Get(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w)
}

// Update handles PUT /workflows/:id with a partial-field body.
//
// @Summary      Update a workflow
// @Tags         workflows
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                    true  "Workflow id"
// @Param        body  body      updateWorkflowRequest  true  "Fields to change"
// @Success      200   {object}  domain.Workflow
// @Failure      404   {object}  map[string]string
// @Router       /workflows/{id} [put]
func (h *WorkflowHandler) Update(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateWorkflowRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	w, err := h.service.Update(c.Request().Context(), id, user.ID, req.toUpdate())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w)
}

// Delete handles DELETE /workflows/:id and returns the deleted record.
//
// @Summary      Delete a workflow
// @Tags         workflows
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      int  true  "Workflow id"
// @Success      200  {object}  domain.Workflow
// @Failure      404  {object}  map[string]string
// @Router       /workflows/{id} [delete]
func (h *WorkflowHandler) Delete(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	w, err := h.service.Delete(c.Request().Context(), id, user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, w)
}

func pathID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, "workflow id must be an integer")
	}
	return id, nil
}

func queryInt(c echo.Context, name string, def int) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusUnprocessableEntity, name+" must be an integer")
	}
	return v, nil
}
