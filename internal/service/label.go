package service

import (
	"context"
	"fmt"

	"github.com/jaekwang-park/todo-labels/internal/model"
	"github.com/jaekwang-park/todo-labels/internal/repository"
)

const MaxLabelNameLength = model.MaxLabelNameLength

type LabelService struct {
	repo repository.LabelRepository
}

func NewLabelService(repo repository.LabelRepository) *LabelService {
	return &LabelService{repo: repo}
}

// Create stores a new label. A name already in use fails with ErrDuplicated;
// the wrapped *repository.DuplicatedLabelError carries the existing id.
func (s *LabelService) Create(ctx context.Context, input model.CreateLabel) (model.Label, error) {
	if err := model.ValidateLabelName(input.Name); err != nil {
		return model.Label{}, fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return model.Label{}, translate("create label", err)
	}
	return created, nil
}

func (s *LabelService) All(ctx context.Context) ([]model.Label, error) {
	labels, err := s.repo.All(ctx)
	if err != nil {
		return nil, translate("list labels", err)
	}
	return labels, nil
}

func (s *LabelService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translate("delete label", err)
	}
	return nil
}
