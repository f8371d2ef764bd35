package progress

import (
	"testing"

	"coursetracker/backend/models"

	"github.com/stretchr/testify/assert"
)

func course(id, title string, topics ...string) models.Course {
	c := models.Course{ID: id, Title: title}
	for i, t := range topics {
		c.Topics = append(c.Topics, models.Topic{CourseID: id, Title: t, SequenceOrder: i})
	}
	return c
}

func TestDeriveCompletionStatus(t *testing.T) {
	live := []string{"A", "B", "C"}

	assert.Equal(t, StatusAvailable, DeriveCompletionStatus(live, nil))

	onLast := record("C", "A", "B")
	assert.Equal(t, StatusCompleted, DeriveCompletionStatus(live, &onLast))

	mid := record("B", "A", "B")
	assert.Equal(t, StatusOngoing, DeriveCompletionStatus(live, &mid))

	// The record's own snapshot ends at B, but the live catalog has grown.
	assert.Equal(t, StatusOngoing, DeriveCompletionStatus(live, &mid))

	noTopics := record(models.DefaultStartTopic)
	assert.Equal(t, StatusOngoing, DeriveCompletionStatus(nil, &noTopics))
}

func TestResolveStatus(t *testing.T) {
	assert.Equal(t, StatusCompleted, ResolveStatus([]string{"A"}, nil, true))
	assert.Equal(t, StatusAvailable, ResolveStatus([]string{"A"}, nil, false))

	rec := record("A", "A", "B")
	assert.Equal(t, StatusOngoing, ResolveStatus([]string{"A", "B"}, &rec, true))
}

func TestAggregateCounts(t *testing.T) {
	courses := []models.Course{
		course("c1", "Go", "A", "B"),
		course("c2", "SQL", "X", "Y"),
		course("c3", "Rust", "R"),
		course("c4", "Empty"),
	}
	byCourse := IndexEnrollments([]models.Enrollment{
		{CourseID: "c1", CurrentTopic: "A"},
		{CourseID: "c2", CurrentTopic: "Y"},
	})

	assert.Equal(t, Counts{Available: 2, Ongoing: 1, Completed: 1}, AggregateCounts(courses, byCourse))
	assert.Equal(t, Counts{Available: 4}, AggregateCounts(courses, nil))
	assert.Equal(t, Counts{}, AggregateCounts(nil, byCourse))
}

func TestSummarize(t *testing.T) {
	courses := []models.Course{
		course("c1", "Go", "A", "B"),
		course("c2", "SQL", "X", "Y"),
		course("c3", "Rust", "R"),
		course("c4", "Zig", "Z"),
	}
	ongoing := []models.Enrollment{{CourseID: "c1", CurrentTopic: "A"}}

	s := Summarize(courses, ongoing, []string{"Rust", "Retired Course"})

	assert.Equal(t, 4, s.Total)
	assert.Equal(t, Counts{Available: 2, Ongoing: 1, Completed: 1}, s.Counts)
	assert.Equal(t, 25, s.OverallProgress)
	assert.Equal(t, []ChartPoint{
		{Name: "Available", Value: 2},
		{Name: "Ongoing", Value: 1},
		{Name: "Completed", Value: 1},
	}, s.Bars)
}

func TestSummarize_WithoutArchiveMatchesAggregate(t *testing.T) {
	courses := []models.Course{course("c1", "Go", "A", "B"), course("c2", "SQL", "X")}
	ongoing := []models.Enrollment{{CourseID: "c2", CurrentTopic: "X"}}

	s := Summarize(courses, ongoing, nil)
	assert.Equal(t, AggregateCounts(courses, IndexEnrollments(ongoing)), s.Counts)
}

func TestSummarize_ArchivedCoursesMoveFromAvailable(t *testing.T) {
	courses := []models.Course{
		course("c1", "Go", "A", "B"),
		course("c2", "SQL", "X", "Y"),
		course("c3", "Rust", "R"),
	}
	// Go was finished once and then re-enrolled, so its record decides.
	ongoing := []models.Enrollment{{CourseID: "c1", CurrentTopic: "A"}}
	completed := []string{"Go", "Rust"}

	base := AggregateCounts(courses, IndexEnrollments(ongoing))
	s := Summarize(courses, ongoing, completed)

	assert.Equal(t, Counts{Available: 2, Ongoing: 1}, base)
	assert.Equal(t, Counts{Available: 1, Ongoing: 1, Completed: 1}, s.Counts)
}

func TestSummarize_EmptyCatalog(t *testing.T) {
	s := Summarize(nil, nil, []string{"Go"})
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0, s.OverallProgress)
}

func TestEnrollmentChart(t *testing.T) {
	c1 := course("c1", "Go")
	c1.EnrolledCount = 3
	c2 := course("c2", "SQL")

	assert.Equal(t, []ChartPoint{{Name: "Go", Value: 3}, {Name: "SQL", Value: 0}},
		EnrollmentChart([]models.Course{c1, c2}))
	assert.Empty(t, EnrollmentChart(nil))
}
