package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/jaekwang-park/todo-labels/internal/middleware"
	"github.com/jaekwang-park/todo-labels/internal/repository"
	"github.com/jaekwang-park/todo-labels/internal/service"
)

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: id must be an integer", service.ErrInvalidInput)
	}
	return id, nil
}

func handleServiceError(c echo.Context, err error) error {
	var dup *repository.DuplicatedLabelError
	switch {
	case errors.Is(err, service.ErrNotFound):
		return WriteError(c, http.StatusNotFound, "NOT_FOUND", notFoundMessage(err))
	case errors.Is(err, service.ErrInvalidInput):
		return WriteError(c, http.StatusBadRequest, "INVALID_INPUT", err.Error())
	case errors.As(err, &dup):
		return WriteError(c, http.StatusInternalServerError, "DUPLICATED_LABEL",
			fmt.Sprintf("label already exists with id: %d", dup.ID))
	default:
		slog.Error("request failed",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"request_id", middleware.GetRequestID(c.Request().Context()),
			"error", err,
		)
		return WriteError(c, http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

func notFoundMessage(err error) string {
	var nf *repository.NotFoundError
	if errors.As(err, &nf) {
		return nf.Error()
	}
	return "resource not found"
}

// HTTPErrorHandler renders errors raised by echo itself (unknown routes,
// unsupported methods, middleware rejections) in the JSON error format.
func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if !errors.As(err, &he) {
		_ = handleServiceError(c, err)
		return
	}

	var werr error
	switch he.Code {
	case http.StatusNotFound:
		werr = WriteError(c, he.Code, "NOT_FOUND", "resource not found")
	case http.StatusMethodNotAllowed:
		werr = WriteError(c, he.Code, "METHOD_NOT_ALLOWED", "method not allowed")
	default:
		werr = WriteError(c, he.Code, "HTTP_ERROR", http.StatusText(he.Code))
	}
	if werr != nil {
		slog.Error("failed to write error response", "error", werr)
	}
}
