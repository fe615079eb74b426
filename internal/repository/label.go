package repository

import (
	"context"

	"github.com/jaekwang-park/todo-labels/internal/model"
)

type LabelRepository interface {
	Create(ctx context.Context, payload model.CreateLabel) (model.Label, error)
	All(ctx context.Context) ([]model.Label, error)
	Delete(ctx context.Context, id int64) error
}
