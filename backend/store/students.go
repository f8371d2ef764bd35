package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"coursetracker/backend/models"
	"coursetracker/backend/services"

	"gorm.io/gorm"
)

// StudentRepo stores students and their ongoing records.
type StudentRepo struct {
	DB *gorm.DB
}

var _ services.StudentStore = (*StudentRepo)(nil)

func NewStudentRepo(db *gorm.DB) *StudentRepo {
	return &StudentRepo{DB: db}
}

func (r *StudentRepo) withOngoing(ctx context.Context) *gorm.DB {
	return r.DB.WithContext(ctx).Preload("Ongoing", func(db *gorm.DB) *gorm.DB {
		return db.Order("created_at ASC, course_id ASC")
	})
}

func (r *StudentRepo) FindStudentByID(ctx context.Context, id string) (*models.Student, error) {
	var st models.Student
	if err := r.withOngoing(ctx).First(&st, "id = ?", id).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("student %s", id), nil)
	}
	return &st, nil
}

// FindStudentByRegisterNo matches registration numbers case-insensitively.
func (r *StudentRepo) FindStudentByRegisterNo(ctx context.Context, registerNo string) (*models.Student, error) {
	var st models.Student
	err := r.withOngoing(ctx).
		Where("LOWER(register_no) = LOWER(?)", strings.TrimSpace(registerNo)).
		First(&st).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("student %s", registerNo), nil)
	}
	return &st, nil
}

func (r *StudentRepo) FindStudentByEmail(ctx context.Context, email string) (*models.Student, error) {
	var st models.Student
	if err := r.withOngoing(ctx).Where("email = ?", email).First(&st).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("student %s", email), nil)
	}
	return &st, nil
}

func (r *StudentRepo) CreateStudent(ctx context.Context, s *models.Student) error {
	if err := r.DB.WithContext(ctx).Create(s).Error; err != nil {
		return translate(err, fmt.Sprintf("student %s", s.Email), services.ErrDuplicateStudent)
	}
	return nil
}

// SaveStudent writes s and replaces its ongoing records. It fails with
// services.ErrConflict if the stored version no longer matches s.Version.
func (r *StudentRepo) SaveStudent(ctx context.Context, s *models.Student) error {
	loaded := s.Version
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.Student{}).
			Where("id = ? AND version = ?", s.ID, loaded).
			Updates(map[string]interface{}{
				"full_name":  s.FullName,
				"department": s.Department,
				"mobile":     s.Mobile,
				"role":       s.Role,
				"linkedin":   s.LinkedIn,
				"github":     s.GitHub,
				"leetcode":   s.LeetCode,
				"completed":  s.Completed,
				"version":    loaded + 1,
				"updated_at": time.Now(),
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return services.ErrConflict
		}

		if err := tx.Where("student_id = ?", s.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		if len(s.Ongoing) == 0 {
			return nil
		}
		for i := range s.Ongoing {
			s.Ongoing[i].StudentID = s.ID
		}
		return tx.Create(&s.Ongoing).Error
	})
	if err != nil {
		return translate(err, fmt.Sprintf("save student %s", s.ID), nil)
	}
	s.Version = loaded + 1
	return nil
}
