package store

import (
	"errors"
	"fmt"

	"coursetracker/backend/services"

	"gorm.io/gorm"
)

// translate maps gorm errors onto the service error taxonomy. dup is the
// error to report for unique-key violations.
func translate(err error, what string, dup error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", what, services.ErrNotFound)
	case dup != nil && errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%s: %w", what, dup)
	default:
		return fmt.Errorf("%s: %w", what, err)
	}
}
