package services

import "errors"

var (
	ErrNotFound        = errors.New("not found")
	ErrDuplicateCourse = errors.New("course already exists")
	ErrAlreadyEnrolled = errors.New("student already enrolled")

	// ErrMalformedProgressState is logged, never returned: the transition
	// degrades to "no next topic" instead.
	ErrMalformedProgressState = errors.New("current topic not found in topic snapshot")

	ErrInvalidInput       = errors.New("invalid input")
	ErrDuplicateStudent   = errors.New("student already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrForbidden          = errors.New("forbidden")
	ErrConflict           = errors.New("concurrent modification")
)

func isNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}
