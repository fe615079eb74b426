package repository

import (
	"errors"
	"fmt"

	"github.com/jaekwang-park/todo-labels/internal/model"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicatedLabel = errors.New("duplicated label")
	ErrUnexpected      = errors.New("unexpected repository error")
)

type NotFoundError struct {
	ID int64
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found id: %d", e.ID)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicatedLabelError reports the id of the label already holding the name.
type DuplicatedLabelError struct {
	ID int64
}

func (e *DuplicatedLabelError) Error() string {
	return fmt.Sprintf("duplicated label id: %d", e.ID)
}

func (e *DuplicatedLabelError) Is(target error) bool {
	return target == ErrDuplicatedLabel
}

type UnexpectedError struct {
	Message string
	Err     error
}

func (e *UnexpectedError) Error() string {
	if e.Err == nil {
		return "unexpected error: " + e.Message
	}
	return fmt.Sprintf("unexpected error: %s: %v", e.Message, e.Err)
}

func (e *UnexpectedError) Unwrap() error {
	return e.Err
}

func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpected
}

func unexpected(message string, err error) error {
	return &UnexpectedError{Message: message, Err: err}
}

// Stores refuse values the schema would reject, whatever the caller checked.
func checkText(text string) error {
	if err := model.ValidateText(text); err != nil {
		return unexpected("invalid todo text", err)
	}
	return nil
}

func checkLabelName(name string) error {
	if err := model.ValidateLabelName(name); err != nil {
		return unexpected("invalid label name", err)
	}
	return nil
}
