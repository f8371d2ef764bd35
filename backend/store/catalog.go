package store

import (
	"context"
	"fmt"

	"coursetracker/backend/models"
	"coursetracker/backend/services"

	"gorm.io/gorm"
)

// CatalogRepo is the gorm-backed course catalog.
type CatalogRepo struct {
	DB *gorm.DB
}

var _ services.CatalogStore = (*CatalogRepo)(nil)

func NewCatalogRepo(db *gorm.DB) *CatalogRepo {
	return &CatalogRepo{DB: db}
}

func orderedTopics(db *gorm.DB) *gorm.DB {
	return db.Order("sequence_order ASC")
}

func (r *CatalogRepo) FindCourseByID(ctx context.Context, id string) (*models.Course, error) {
	var course models.Course
	err := r.DB.WithContext(ctx).
		Preload("Topics", orderedTopics).
		First(&course, "id = ?", id).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("course %s", id), nil)
	}
	return &course, nil
}

func (r *CatalogRepo) FindCourseByTitle(ctx context.Context, title string) (*models.Course, error) {
	var course models.Course
	err := r.DB.WithContext(ctx).
		Preload("Topics", orderedTopics).
		Where("title = ?", title).
		First(&course).Error
	if err != nil {
		return nil, translate(err, fmt.Sprintf("course %q", title), nil)
	}
	return &course, nil
}

func (r *CatalogRepo) ListCourses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.DB.WithContext(ctx).
		Preload("Topics", orderedTopics).
		Order("created_at ASC").
		Find(&courses).Error
	if err != nil {
		return nil, translate(err, "list courses", nil)
	}
	return courses, nil
}

func (r *CatalogRepo) CreateCourse(ctx context.Context, c *models.Course) (*models.Course, error) {
	if err := r.DB.WithContext(ctx).Create(c).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("course %q", c.Title), services.ErrDuplicateCourse)
	}
	if c.Topics == nil {
		c.Topics = []models.Topic{}
	}
	return c, nil
}

// AppendTopic adds t after the course's current last topic.
func (r *CatalogRepo) AppendTopic(ctx context.Context, courseID string, t models.Topic) (*models.Course, error) {
	err := r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Course{}).Where("id = ?", courseID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return gorm.ErrRecordNotFound
		}

		var last struct{ Max *int }
		if err := tx.Model(&models.Topic{}).
			Select("MAX(sequence_order) AS max").
			Where("course_id = ?", courseID).
			Scan(&last).Error; err != nil {
			return err
		}

		t.ID = 0
		t.CourseID = courseID
		t.SequenceOrder = 0
		if last.Max != nil {
			t.SequenceOrder = *last.Max + 1
		}
		return tx.Create(&t).Error
	})
	if err != nil {
		return nil, translate(err, fmt.Sprintf("append topic to course %s", courseID), nil)
	}
	return r.FindCourseByID(ctx, courseID)
}

func (r *CatalogRepo) IncrementEnrolled(ctx context.Context, courseID string) error {
	res := r.DB.WithContext(ctx).
		Model(&models.Course{}).
		Where("id = ?", courseID).
		UpdateColumn("enrolled_count", gorm.Expr("enrolled_count + ?", 1))
	if res.Error != nil {
		return translate(res.Error, fmt.Sprintf("course %s", courseID), nil)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("course %s: %w", courseID, services.ErrNotFound)
	}
	return nil
}
