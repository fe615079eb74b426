package handler_test

import (
	"context"
	"net/http/httptest"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/jaekwang-park/todo-labels/internal/http/handler"
	"github.com/jaekwang-park/todo-labels/internal/model"
)

// mockTodoRepo for handler tests
type mockTodoRepo struct {
	createFn func(ctx context.Context, payload model.CreateTodo) (model.TodoEntity, error)
	findFn   func(ctx context.Context, id int64) (model.TodoEntity, error)
	allFn    func(ctx context.Context) ([]model.TodoEntity, error)
	updateFn func(ctx context.Context, id int64, payload model.UpdateTodo) (model.TodoEntity, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockTodoRepo) Create(ctx context.Context, payload model.CreateTodo) (model.TodoEntity, error) {
	return m.createFn(ctx, payload)
}
func (m *mockTodoRepo) Find(ctx context.Context, id int64) (model.TodoEntity, error) {
	return m.findFn(ctx, id)
}
func (m *mockTodoRepo) All(ctx context.Context) ([]model.TodoEntity, error) {
	return m.allFn(ctx)
}
func (m *mockTodoRepo) Update(ctx context.Context, id int64, payload model.UpdateTodo) (model.TodoEntity, error) {
	return m.updateFn(ctx, id, payload)
}
func (m *mockTodoRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

type mockLabelRepo struct {
	createFn func(ctx context.Context, payload model.CreateLabel) (model.Label, error)
	allFn    func(ctx context.Context) ([]model.Label, error)
	deleteFn func(ctx context.Context, id int64) error
}

func (m *mockLabelRepo) Create(ctx context.Context, payload model.CreateLabel) (model.Label, error) {
	return m.createFn(ctx, payload)
}
func (m *mockLabelRepo) All(ctx context.Context) ([]model.Label, error) {
	return m.allFn(ctx)
}
func (m *mockLabelRepo) Delete(ctx context.Context, id int64) error {
	return m.deleteFn(ctx, id)
}

func sampleTodo() model.TodoEntity {
	return model.TodoEntity{
		ID:     1,
		Text:   "Buy groceries",
		Labels: []model.Label{{ID: 1, Name: "home"}},
	}
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = handler.HTTPErrorHandler
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	return w
}
