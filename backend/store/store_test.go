package store

import (
	"context"
	"testing"

	"coursetracker/backend/models"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func newRepos(t *testing.T) (*CatalogRepo, *StudentRepo) {
	t.Helper()
	db, err := utils.OpenMemoryDB(uuid.NewString())
	require.NoError(t, err)
	return NewCatalogRepo(db), NewStudentRepo(db)
}

func newStudent(t *testing.T, repo *StudentRepo, registerNo, email string) *models.Student {
	t.Helper()
	st := &models.Student{
		FullName:     "Test Student",
		RegisterNo:   registerNo,
		Department:   "CSE",
		Mobile:       "9999999999",
		Email:        email,
		PasswordHash: "hash",
	}
	require.NoError(t, repo.CreateStudent(context.Background(), st))
	return st
}

func TestCatalogRepo_CreateAndAppendTopics(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newRepos(t)

	course, err := catalog.CreateCourse(ctx, &models.Course{Title: "Go"})
	require.NoError(t, err)
	require.NotEmpty(t, course.ID)

	for _, title := range []string{"Syntax", "Types", "Concurrency"} {
		course, err = catalog.AppendTopic(ctx, course.ID, models.Topic{Title: title, Level: models.LevelBasic})
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"Syntax", "Types", "Concurrency"}, course.TopicTitles())
	assert.Equal(t, 2, course.Topics[2].SequenceOrder)

	byTitle, err := catalog.FindCourseByTitle(ctx, "Go")
	require.NoError(t, err)
	assert.Equal(t, course.ID, byTitle.ID)
}

func TestCatalogRepo_DuplicateTitle(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newRepos(t)

	_, err := catalog.CreateCourse(ctx, &models.Course{Title: "Go"})
	require.NoError(t, err)

	_, err = catalog.CreateCourse(ctx, &models.Course{Title: "Go"})
	assert.ErrorIs(t, err, services.ErrDuplicateCourse)
}

func TestCatalogRepo_NotFound(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newRepos(t)

	_, err := catalog.FindCourseByID(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = catalog.AppendTopic(ctx, "missing", models.Topic{Title: "x"})
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, catalog.IncrementEnrolled(ctx, "missing"), services.ErrNotFound)
}

func TestCatalogRepo_IncrementEnrolled(t *testing.T) {
	ctx := context.Background()
	catalog, _ := newRepos(t)

	course, err := catalog.CreateCourse(ctx, &models.Course{Title: "Go"})
	require.NoError(t, err)
	require.NoError(t, catalog.IncrementEnrolled(ctx, course.ID))
	require.NoError(t, catalog.IncrementEnrolled(ctx, course.ID))

	got, err := catalog.FindCourseByID(ctx, course.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.EnrolledCount)
}

func TestStudentRepo_FindByRegisterNoIgnoresCase(t *testing.T) {
	ctx := context.Background()
	_, students := newRepos(t)
	st := newStudent(t, students, "21CS001", "a@example.com")

	got, err := students.FindStudentByRegisterNo(ctx, " 21cs001 ")
	require.NoError(t, err)
	assert.Equal(t, st.ID, got.ID)

	_, err = students.FindStudentByRegisterNo(ctx, "21CS999")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestStudentRepo_DuplicateEmail(t *testing.T) {
	_, students := newRepos(t)
	newStudent(t, students, "21CS001", "a@example.com")

	err := students.CreateStudent(context.Background(), &models.Student{
		FullName:     "Other",
		RegisterNo:   "21CS002",
		Email:        "a@example.com",
		PasswordHash: "hash",
	})
	assert.ErrorIs(t, err, services.ErrDuplicateStudent)
}

func TestStudentRepo_SaveReplacesOngoing(t *testing.T) {
	ctx := context.Background()
	catalog, students := newRepos(t)
	st := newStudent(t, students, "21CS001", "a@example.com")

	course, err := catalog.CreateCourse(ctx, &models.Course{Title: "Go"})
	require.NoError(t, err)

	st.Ongoing = append(st.Ongoing, models.Enrollment{
		CourseID:     course.ID,
		Title:        course.Title,
		CurrentTopic: "A",
		AllTopics:    datatypes.JSONSlice[string]{"A", "B"},
		Status:       models.EnrollmentEnrolled,
	})
	require.NoError(t, students.SaveStudent(ctx, st))
	assert.Equal(t, 1, st.Version)

	// Topics added to the course later stay out of the stored snapshot.
	_, err = catalog.AppendTopic(ctx, course.ID, models.Topic{Title: "C"})
	require.NoError(t, err)

	got, err := students.FindStudentByID(ctx, st.ID)
	require.NoError(t, err)
	require.Len(t, got.Ongoing, 1)
	assert.Equal(t, []string{"A", "B"}, got.Ongoing[0].Snapshot())

	got.Complete(course.ID, course.Title)
	require.NoError(t, students.SaveStudent(ctx, got))

	got, err = students.FindStudentByID(ctx, st.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Ongoing)
	assert.Equal(t, []string{"Go"}, []string(got.Completed))
	assert.Equal(t, 2, got.Version)
}

func TestStudentRepo_SaveDetectsStaleVersion(t *testing.T) {
	ctx := context.Background()
	_, students := newRepos(t)
	st := newStudent(t, students, "21CS001", "a@example.com")

	first, err := students.FindStudentByID(ctx, st.ID)
	require.NoError(t, err)
	second, err := students.FindStudentByID(ctx, st.ID)
	require.NoError(t, err)

	first.Department = "ECE"
	require.NoError(t, students.SaveStudent(ctx, first))

	second.Department = "MECH"
	err = students.SaveStudent(ctx, second)
	assert.ErrorIs(t, err, services.ErrConflict)
	assert.Equal(t, 0, second.Version)

	got, err := students.FindStudentByID(ctx, st.ID)
	require.NoError(t, err)
	assert.Equal(t, "ECE", got.Department)
}
