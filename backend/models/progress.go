package models

import (
	"time"

	"gorm.io/datatypes"
)

const (
	EnrollmentEnrolled   = "Enrolled"
	EnrollmentInProgress = "In Progress"

	// DefaultStartTopic is the current topic of a record whose course had no topics at enrollment.
	DefaultStartTopic = "Getting Started"
)

// Enrollment is a student's progress through one course. AllTopics is the
// course's topic list captured at enrollment and is never refreshed from the
// catalog afterwards.
type Enrollment struct {
	StudentID     string                      `gorm:"primaryKey;size:36" json:"-"`
	CourseID      string                      `gorm:"primaryKey;size:36" json:"courseId"`
	Title         string                      `json:"title"`
	CurrentTopic  string                      `json:"currentTopic"`
	AllTopics     datatypes.JSONSlice[string] `json:"allTopics"`
	ProgressLevel int                         `gorm:"not null;default:0" json:"progressLevel"`
	Status        string                      `json:"status,omitempty"`
	CreatedAt     time.Time                   `json:"enrolledAt"`
	UpdatedAt     time.Time                   `json:"updatedAt"`
}

// Snapshot returns the frozen topic list as a plain slice.
func (e Enrollment) Snapshot() []string {
	return []string(e.AllTopics)
}
