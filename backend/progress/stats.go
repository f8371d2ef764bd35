package progress

import "coursetracker/backend/models"

type CompletionStatus string

const (
	StatusAvailable CompletionStatus = "available"
	StatusOngoing   CompletionStatus = "ongoing"
	StatusCompleted CompletionStatus = "completed"
)

// DeriveCompletionStatus checks rec against the live topic list of its
// course, not against the record's own snapshot. A nil rec means the student
// holds no record for the course.
func DeriveCompletionStatus(courseTopics []string, rec *models.Enrollment) CompletionStatus {
	if rec == nil {
		return StatusAvailable
	}
	if n := len(courseTopics); n > 0 && rec.CurrentTopic == courseTopics[n-1] {
		return StatusCompleted
	}
	return StatusOngoing
}

// ResolveStatus is DeriveCompletionStatus that also honours courses the
// student already finished, whose records have been retired.
func ResolveStatus(courseTopics []string, rec *models.Enrollment, archived bool) CompletionStatus {
	status := DeriveCompletionStatus(courseTopics, rec)
	if status == StatusAvailable && archived {
		return StatusCompleted
	}
	return status
}

type Counts struct {
	Available int `json:"available"`
	Ongoing   int `json:"ongoing"`
	Completed int `json:"completed"`
}

func (c *Counts) add(s CompletionStatus) {
	switch s {
	case StatusAvailable:
		c.Available++
	case StatusOngoing:
		c.Ongoing++
	case StatusCompleted:
		c.Completed++
	}
}

// IndexEnrollments keys records by course id.
func IndexEnrollments(recs []models.Enrollment) map[string]models.Enrollment {
	out := make(map[string]models.Enrollment, len(recs))
	for _, r := range recs {
		out[r.CourseID] = r
	}
	return out
}

func AggregateCounts(courses []models.Course, byCourse map[string]models.Enrollment) Counts {
	var counts Counts
	for _, c := range courses {
		counts.add(DeriveCompletionStatus(c.TopicTitles(), lookup(byCourse, c.ID)))
	}
	return counts
}

func lookup(byCourse map[string]models.Enrollment, courseID string) *models.Enrollment {
	rec, ok := byCourse[courseID]
	if !ok {
		return nil
	}
	return &rec
}

type ChartPoint struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

type Summary struct {
	Total           int          `json:"total"`
	Counts          Counts       `json:"counts"`
	OverallProgress int          `json:"overallProgress"`
	Bars            []ChartPoint `json:"bars"`
}

// Summarize builds the dashboard statistics for one student.
func Summarize(courses []models.Course, ongoing []models.Enrollment, completed []string) Summary {
	byCourse := IndexEnrollments(ongoing)
	done := make(map[string]struct{}, len(completed))
	for _, t := range completed {
		done[t] = struct{}{}
	}

	counts := AggregateCounts(courses, byCourse)
	for _, c := range courses {
		// Finished courses have no record left and were counted as available.
		if _, archived := done[c.Title]; archived && lookup(byCourse, c.ID) == nil {
			counts.Available--
			counts.Completed++
		}
	}
	return Summary{
		Total:           len(courses),
		Counts:          counts,
		OverallProgress: OverallProgressPercent(counts.Completed, len(courses)),
		Bars:            StatusBars(counts),
	}
}

func StatusBars(c Counts) []ChartPoint {
	return []ChartPoint{
		{Name: "Available", Value: c.Available},
		{Name: "Ongoing", Value: c.Ongoing},
		{Name: "Completed", Value: c.Completed},
	}
}

// EnrollmentChart is the per-course enrolment pie. The counter only ever
// grows, so it includes students who have since completed the course.
func EnrollmentChart(courses []models.Course) []ChartPoint {
	points := make([]ChartPoint, 0, len(courses))
	for _, c := range courses {
		points = append(points, ChartPoint{Name: c.Title, Value: c.EnrolledCount})
	}
	return points
}
