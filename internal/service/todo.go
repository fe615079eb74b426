package service

import (
	"context"
	"fmt"

	"github.com/jaekwang-park/todo-labels/internal/model"
	"github.com/jaekwang-park/todo-labels/internal/repository"
)

const MaxTextLength = model.MaxTextLength

func validateText(text string) error {
	if err := model.ValidateText(text); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
	return nil
}

type TodoService struct {
	repo repository.TodoRepository
}

func NewTodoService(repo repository.TodoRepository) *TodoService {
	return &TodoService{repo: repo}
}

func (s *TodoService) Create(ctx context.Context, input model.CreateTodo) (model.TodoEntity, error) {
	if err := validateText(input.Text); err != nil {
		return model.TodoEntity{}, err
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return model.TodoEntity{}, translate("create todo", err)
	}
	return created, nil
}

func (s *TodoService) Find(ctx context.Context, id int64) (model.TodoEntity, error) {
	todo, err := s.repo.Find(ctx, id)
	if err != nil {
		return model.TodoEntity{}, translate("get todo", err)
	}
	return todo, nil
}

func (s *TodoService) All(ctx context.Context) ([]model.TodoEntity, error) {
	todos, err := s.repo.All(ctx)
	if err != nil {
		return nil, translate("list todos", err)
	}
	return todos, nil
}

func (s *TodoService) Update(ctx context.Context, id int64, input model.UpdateTodo) (model.TodoEntity, error) {
	if input.Text != nil {
		if err := validateText(*input.Text); err != nil {
			return model.TodoEntity{}, err
		}
	}

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return model.TodoEntity{}, translate("update todo", err)
	}
	return updated, nil
}

func (s *TodoService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate("delete todo", err)
	}
	return nil
}
