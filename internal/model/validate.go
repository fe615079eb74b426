package model

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

const (
	MaxTextLength      = 288
	MaxLabelNameLength = 255
)

// Lengths are counted in runes and surrounding whitespace is kept as given.
func ValidateText(text string) error {
	if text == "" {
		return errors.New("text is required")
	}
	if utf8.RuneCountInString(text) > MaxTextLength {
		return fmt.Errorf("text must be at most %d characters", MaxTextLength)
	}
	return nil
}

func ValidateLabelName(name string) error {
	if name == "" {
		return errors.New("name is required")
	}
	if utf8.RuneCountInString(name) > MaxLabelNameLength {
		return fmt.Errorf("name must be at most %d characters", MaxLabelNameLength)
	}
	return nil
}
