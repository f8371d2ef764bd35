package services

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"coursetracker/backend/models"
	"coursetracker/backend/progress"
	"coursetracker/backend/utils"

	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
)

// EnrollmentService runs the catalog and progress operations. Each call is a
// single read-modify-write against the stores.
type EnrollmentService struct {
	catalog  CatalogStore
	students StudentStore
	log      *utils.Logger
}

func NewEnrollmentService(catalog CatalogStore, students StudentStore, log *utils.Logger) *EnrollmentService {
	return &EnrollmentService{
		catalog:  catalog,
		students: students,
		log:      log.With("service", "EnrollmentService"),
	}
}

// Dashboard is the student's own view of their identity and progress.
type Dashboard struct {
	ID         string              `json:"_id"`
	FullName   string              `json:"fullName"`
	RegisterNo string              `json:"registerNo"`
	Department string              `json:"department"`
	Email      string              `json:"email"`
	Mobile     string              `json:"mobile"`
	Ongoing    []models.Enrollment `json:"ongoing"`
	Completed  []string            `json:"completed"`
}

type Roadmap struct {
	CourseID     string               `json:"courseId"`
	Title        string               `json:"title"`
	CurrentTopic string               `json:"currentTopic"`
	Topics       []progress.TopicView `json:"topics"`
}

type CourseOverview struct {
	ID            string                    `json:"id"`
	Title         string                    `json:"title"`
	TopicCount    int                       `json:"topicCount"`
	EnrolledCount int                       `json:"enrolledStudents"`
	Status        progress.CompletionStatus `json:"status"`
}

// ProgressUpdate reports what MarkProgress did.
type ProgressUpdate struct {
	Student *models.Student  `json:"student"`
	Outcome progress.Outcome `json:"outcome"`
}

func (s *EnrollmentService) CreateCourse(ctx context.Context, sess Session, title string) (*models.Course, error) {
	if err := sess.requireAdmin("create course"); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("course title required: %w", ErrInvalidInput)
	}

	_, err := s.catalog.FindCourseByTitle(ctx, title)
	switch {
	case err == nil:
		return nil, fmt.Errorf("course %q: %w", title, ErrDuplicateCourse)
	case !isNotFound(err):
		return nil, err
	}

	course, err := s.catalog.CreateCourse(ctx, &models.Course{Title: title})
	if err != nil {
		return nil, err
	}
	s.log.Info("course created", "course_id", course.ID, "title", course.Title)
	return course, nil
}

func (s *EnrollmentService) AddTopic(ctx context.Context, sess Session, courseID, title string, level models.TopicLevel) (*models.Course, error) {
	if err := sess.requireAdmin("add topic"); err != nil {
		return nil, err
	}
	title = strings.TrimSpace(title)
	if courseID == "" || title == "" {
		return nil, fmt.Errorf("course and topic required: %w", ErrInvalidInput)
	}
	if level == "" {
		level = models.LevelBasic
	}
	if !level.Valid() {
		return nil, fmt.Errorf("topic level %q: %w", level, ErrInvalidInput)
	}

	course, err := s.catalog.AppendTopic(ctx, courseID, models.Topic{Title: title, Level: level})
	if err != nil {
		return nil, err
	}
	s.log.Info("topic added", "course_id", courseID, "topic", title, "topics", len(course.Topics))
	return course, nil
}

func (s *EnrollmentService) ListCourses(ctx context.Context) ([]models.Course, error) {
	return s.catalog.ListCourses(ctx)
}

// EnrollmentChart returns the per-course enrolment counters for the admin pie chart.
func (s *EnrollmentService) EnrollmentChart(ctx context.Context, sess Session) ([]progress.ChartPoint, error) {
	if err := sess.requireAdmin("enrollment chart"); err != nil {
		return nil, err
	}
	courses, err := s.catalog.ListCourses(ctx)
	if err != nil {
		return nil, err
	}
	return progress.EnrollmentChart(courses), nil
}

// Enroll opens a record for courseID holding a snapshot of the course's
// current topic list. The record and the course's enrolled count are
// separate writes: if the count update fails the record is kept and the
// error is returned.
func (s *EnrollmentService) Enroll(ctx context.Context, sess Session, studentID, courseID string) (*models.Student, error) {
	if err := sess.requireSelfOrAdmin("enroll", studentID); err != nil {
		return nil, err
	}
	course, err := s.catalog.FindCourseByID(ctx, courseID)
	if err != nil {
		return nil, err
	}

	snapshot := course.TopicTitles()
	current := models.DefaultStartTopic
	if len(snapshot) > 0 {
		current = snapshot[0]
	}

	st, err := mutateStudent(ctx, s.students, s.log, s.loadByID(studentID), func(st *models.Student) error {
		if st.FindEnrollment(course.ID) >= 0 {
			return fmt.Errorf("student %s course %s: %w", st.ID, course.ID, ErrAlreadyEnrolled)
		}
		st.Ongoing = append(st.Ongoing, models.Enrollment{
			StudentID:    st.ID,
			CourseID:     course.ID,
			Title:        course.Title,
			CurrentTopic: current,
			AllTopics:    datatypes.JSONSlice[string](slices.Clone(snapshot)),
			Status:       models.EnrollmentEnrolled,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := s.catalog.IncrementEnrolled(ctx, course.ID); err != nil {
		s.log.Error("enrolled count not incremented",
			"student_id", st.ID,
			"course_id", course.ID,
			"error", err)
		return nil, err
	}
	s.log.Info("student enrolled", "student_id", st.ID, "course_id", course.ID, "topics", len(snapshot))
	return st, nil
}

// MarkProgress applies sig to the student's record for courseID. Explicit
// topic overrides are an admin capability.
func (s *EnrollmentService) MarkProgress(ctx context.Context, sess Session, studentID, courseID string, sig progress.Signal) (*ProgressUpdate, error) {
	if err := sess.requireSelfOrAdmin("mark progress", studentID); err != nil {
		return nil, err
	}
	return s.markProgress(ctx, sess, s.loadByID(studentID), courseID, sig)
}

// MarkProgressByRegisterNo is MarkProgress keyed by registration number, as
// the admin search page addresses students.
func (s *EnrollmentService) MarkProgressByRegisterNo(ctx context.Context, sess Session, registerNo, courseID string, sig progress.Signal) (*ProgressUpdate, error) {
	if err := sess.requireAdmin("mark progress"); err != nil {
		return nil, err
	}
	return s.markProgress(ctx, sess, s.loadByRegisterNo(registerNo), courseID, sig)
}

func (s *EnrollmentService) markProgress(
	ctx context.Context,
	sess Session,
	load func(context.Context) (*models.Student, error),
	courseID string,
	sig progress.Signal,
) (*ProgressUpdate, error) {
	if sig.Kind == progress.SignalOverride && !sess.IsAdmin() {
		return nil, fmt.Errorf("topic override: %w", ErrForbidden)
	}

	var outcome progress.Outcome
	st, err := mutateStudent(ctx, s.students, s.log, load, func(st *models.Student) error {
		i := st.FindEnrollment(courseID)
		if i < 0 {
			return fmt.Errorf("enrollment for course %s: %w", courseID, ErrNotFound)
		}
		rec := st.Ongoing[i]
		t := progress.Advance(rec, sig)
		outcome = t.Outcome

		switch t.Outcome {
		case progress.OutcomeAdvanced, progress.OutcomeOverridden:
			st.Ongoing[i] = t.Record
		case progress.OutcomeCompleted:
			st.Complete(rec.CourseID, rec.Title)
		case progress.OutcomeStalled:
			if t.Malformed {
				s.log.Warn("progress state malformed",
					"student_id", st.ID,
					"course_id", courseID,
					"current_topic", rec.CurrentTopic,
					"error", ErrMalformedProgressState)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log.Info("progress updated", "student_id", st.ID, "course_id", courseID, "outcome", outcome)
	return &ProgressUpdate{Student: st, Outcome: outcome}, nil
}

func (s *EnrollmentService) GetDashboard(ctx context.Context, sess Session, studentID string) (*Dashboard, error) {
	if err := sess.requireSelfOrAdmin("dashboard", studentID); err != nil {
		return nil, err
	}
	st, err := s.students.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	ongoing := st.Ongoing
	if ongoing == nil {
		ongoing = []models.Enrollment{}
	}
	completed := []string(st.Completed)
	if completed == nil {
		completed = []string{}
	}
	return &Dashboard{
		ID:         st.ID,
		FullName:   st.FullName,
		RegisterNo: st.RegisterNo,
		Department: st.Department,
		Email:      st.Email,
		Mobile:     st.Mobile,
		Ongoing:    ongoing,
		Completed:  completed,
	}, nil
}

// GetRoadmap classifies the record's frozen snapshot, so topics added to the
// course later do not appear.
func (s *EnrollmentService) GetRoadmap(ctx context.Context, sess Session, studentID, courseID string) (*Roadmap, error) {
	if err := sess.requireSelfOrAdmin("roadmap", studentID); err != nil {
		return nil, err
	}
	st, err := s.students.FindStudentByID(ctx, studentID)
	if err != nil {
		return nil, err
	}
	i := st.FindEnrollment(courseID)
	if i < 0 {
		return nil, fmt.Errorf("enrollment for course %s: %w", courseID, ErrNotFound)
	}
	rec := st.Ongoing[i]
	return &Roadmap{
		CourseID:     rec.CourseID,
		Title:        rec.Title,
		CurrentTopic: rec.CurrentTopic,
		Topics:       slices.Collect(progress.ClassifyTopics(rec.Snapshot(), rec.CurrentTopic)),
	}, nil
}

// GetProgressSummary computes dashboard counts against the live catalog.
func (s *EnrollmentService) GetProgressSummary(ctx context.Context, sess Session, studentID string) (*progress.Summary, error) {
	if err := sess.requireSelfOrAdmin("progress summary", studentID); err != nil {
		return nil, err
	}
	courses, st, err := s.loadCatalogAndStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	summary := progress.Summarize(courses, st.Ongoing, st.Completed)
	return &summary, nil
}

// GetCourseOverview tags every catalog course with the student's status.
func (s *EnrollmentService) GetCourseOverview(ctx context.Context, sess Session, studentID string) ([]CourseOverview, error) {
	if err := sess.requireSelfOrAdmin("course overview", studentID); err != nil {
		return nil, err
	}
	courses, st, err := s.loadCatalogAndStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}

	overview := make([]CourseOverview, 0, len(courses))
	for _, c := range courses {
		var rec *models.Enrollment
		if i := st.FindEnrollment(c.ID); i >= 0 {
			rec = &st.Ongoing[i]
		}
		overview = append(overview, CourseOverview{
			ID:            c.ID,
			Title:         c.Title,
			TopicCount:    len(c.Topics),
			EnrolledCount: c.EnrolledCount,
			Status:        progress.ResolveStatus(c.TopicTitles(), rec, st.HasCompleted(c.Title)),
		})
	}
	return overview, nil
}

func (s *EnrollmentService) FindStudentByRegisterNo(ctx context.Context, sess Session, registerNo string) (*models.Student, error) {
	if err := sess.requireAdmin("find student"); err != nil {
		return nil, err
	}
	return s.loadByRegisterNo(registerNo)(ctx)
}

func (s *EnrollmentService) loadCatalogAndStudent(ctx context.Context, studentID string) ([]models.Course, *models.Student, error) {
	var (
		courses []models.Course
		st      *models.Student
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		courses, err = s.catalog.ListCourses(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		st, err = s.students.FindStudentByID(gctx, studentID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return courses, st, nil
}

func (s *EnrollmentService) loadByID(id string) func(context.Context) (*models.Student, error) {
	return func(ctx context.Context) (*models.Student, error) {
		return s.students.FindStudentByID(ctx, id)
	}
}

func (s *EnrollmentService) loadByRegisterNo(registerNo string) func(context.Context) (*models.Student, error) {
	return func(ctx context.Context) (*models.Student, error) {
		registerNo = strings.TrimSpace(registerNo)
		if registerNo == "" {
			return nil, fmt.Errorf("register number required: %w", ErrInvalidInput)
		}
		return s.students.FindStudentByRegisterNo(ctx, registerNo)
	}
}
