package apierror

import (
	"errors"
	"fmt"
	"strings"
)

type ValidationError struct {
	RowNumber int
	UserMsg   string
}

type ValidationFn[T any] func(T) error

func NotEmpty(s string) error {
	if strings.TrimSpace(s) != "" {
		return nil
	}

	return errors.New(ErrValueMustNotBeEmpty)
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error at row %d: %s", e.RowNumber, e.UserMsg)
}
