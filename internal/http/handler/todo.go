package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaekwang-park/todo-labels/internal/model"
	"github.com/jaekwang-park/todo-labels/internal/service"
)

type TodoHandler struct {
	svc *service.TodoService
}

func NewTodoHandler(svc *service.TodoService) *TodoHandler {
	return &TodoHandler{svc: svc}
}

func (h *TodoHandler) Create(c echo.Context) error {
	var req model.CreateTodo
	if err := c.Bind(&req); err != nil {
		return WriteError(c, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
	}

	todo, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return WriteJSON(c, http.StatusCreated, todo)
}

func (h *TodoHandler) All(c echo.Context) error {
	todos, err := h.svc.All(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return WriteJSON(c, http.StatusOK, todos)
}

func (h *TodoHandler) Find(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return WriteError(c, http.StatusBadRequest, "INVALID_ID", err.Error())
	}

	todo, err := h.svc.Find(c.Request().Context(), id)
	if err != nil {
		return handleServiceError(c, err)
	}

	return WriteJSON(c, http.StatusOK, todo)
}

// Update applies a partial update. It answers 201 Created, as existing
// clients expect.
func (h *TodoHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return WriteError(c, http.StatusBadRequest, "INVALID_ID", err.Error())
	}

	var req model.UpdateTodo
	if err := c.Bind(&req); err != nil {
		return WriteError(c, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
	}

	todo, err := h.svc.Update(c.Request().Context(), id, req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return WriteJSON(c, http.StatusCreated, todo)
}

func (h *TodoHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return WriteError(c, http.StatusBadRequest, "INVALID_ID", err.Error())
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
