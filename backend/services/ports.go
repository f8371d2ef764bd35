package services

import (
	"context"

	"coursetracker/backend/models"
)

// CatalogStore holds courses and their ordered topics. Lookups return
// ErrNotFound when nothing matches.
type CatalogStore interface {
	FindCourseByID(ctx context.Context, id string) (*models.Course, error)
	FindCourseByTitle(ctx context.Context, title string) (*models.Course, error)
	ListCourses(ctx context.Context) ([]models.Course, error)
	CreateCourse(ctx context.Context, c *models.Course) (*models.Course, error)
	AppendTopic(ctx context.Context, courseID string, t models.Topic) (*models.Course, error)
	IncrementEnrolled(ctx context.Context, courseID string) error
}

// StudentStore holds students together with their ongoing records.
// SaveStudent returns ErrConflict when the student changed since it was loaded.
type StudentStore interface {
	FindStudentByID(ctx context.Context, id string) (*models.Student, error)
	FindStudentByRegisterNo(ctx context.Context, registerNo string) (*models.Student, error)
	FindStudentByEmail(ctx context.Context, email string) (*models.Student, error)
	CreateStudent(ctx context.Context, s *models.Student) error
	SaveStudent(ctx context.Context, s *models.Student) error
}
