package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/jaekwang-park/todo-labels/internal/model"
	"github.com/jaekwang-park/todo-labels/internal/service"
)

type LabelHandler struct {
	svc *service.LabelService
}

func NewLabelHandler(svc *service.LabelService) *LabelHandler {
	return &LabelHandler{svc: svc}
}

func (h *LabelHandler) Create(c echo.Context) error {
	var req model.CreateLabel
	if err := c.Bind(&req); err != nil {
		return WriteError(c, http.StatusBadRequest, "INVALID_JSON", "invalid request body")
	}

	label, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return handleServiceError(c, err)
	}

	return WriteJSON(c, http.StatusCreated, label)
}

func (h *LabelHandler) All(c echo.Context) error {
	labels, err := h.svc.All(c.Request().Context())
	if err != nil {
		return handleServiceError(c, err)
	}

	return WriteJSON(c, http.StatusOK, labels)
}

func (h *LabelHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return WriteError(c, http.StatusBadRequest, "INVALID_ID", err.Error())
	}

	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return handleServiceError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
