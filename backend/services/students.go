package services

import (
	"context"
	"errors"

	"coursetracker/backend/models"
	"coursetracker/backend/utils"
)

const maxSaveAttempts = 3

// mutateStudent loads a student, applies fn and saves, reloading and
// reapplying when another writer got there first.
func mutateStudent(
	ctx context.Context,
	students StudentStore,
	log *utils.Logger,
	load func(context.Context) (*models.Student, error),
	fn func(*models.Student) error,
) (*models.Student, error) {
	for attempt := 1; ; attempt++ {
		st, err := load(ctx)
		if err != nil {
			return nil, err
		}
		if err := fn(st); err != nil {
			return nil, err
		}
		err = students.SaveStudent(ctx, st)
		if err == nil {
			return st, nil
		}
		if !errors.Is(err, ErrConflict) || attempt >= maxSaveAttempts {
			return nil, err
		}
		log.Warn("student save conflict, retrying", "student_id", st.ID, "attempt", attempt)
	}
}
