package apierror

import (
	"errors"
	"fmt"
)

// ErrCourseNotFound is matched by every NotFoundError via errors.Is.
var ErrCourseNotFound = errors.New("key not found")

type NotFoundError struct {
	Code string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("course %q: %s", e.Code, ErrCourseNotFound)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrCourseNotFound
}
