package service

import (
	"errors"
	"fmt"

	"github.com/jaekwang-park/todo-labels/internal/repository"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")
	ErrDuplicated   = errors.New("duplicated")
)

// translate maps a repository error onto the service sentinels, keeping the
// original error in the chain. Anything unrecognised is wrapped with op.
func translate(op string, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %w", ErrNotFound, err)
	case errors.Is(err, repository.ErrDuplicatedLabel):
		return fmt.Errorf("%w: %w", ErrDuplicated, err)
	default:
		return fmt.Errorf("failed to %s: %w", op, err)
	}
}
