package repository

import (
	"context"

	"github.com/jaekwang-park/todo-labels/internal/model"
)

type TodoRepository interface {
	Create(ctx context.Context, payload model.CreateTodo) (model.TodoEntity, error)
	Find(ctx context.Context, id int64) (model.TodoEntity, error)
	All(ctx context.Context) ([]model.TodoEntity, error)
	Update(ctx context.Context, id int64, payload model.UpdateTodo) (model.TodoEntity, error)
	Delete(ctx context.Context, id int64) error
}

// uniqueLabelIDs drops repeated label ids, keeping the first occurrence.
func uniqueLabelIDs(ids []int64) []int64 {
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
