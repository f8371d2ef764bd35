package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

type Student struct {
	ID           string `gorm:"primaryKey;size:36" json:"_id"`
	FullName     string `gorm:"not null" json:"fullName"`
	RegisterNo   string `gorm:"index;not null" json:"registerNo"`
	Department   string `gorm:"not null" json:"department"`
	Mobile       string `gorm:"not null" json:"mobile"`
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"default:student" json:"role"`

	LinkedIn string `gorm:"column:linkedin" json:"linkedin"`
	GitHub   string `gorm:"column:github" json:"github"`
	LeetCode string `gorm:"column:leetcode" json:"leetcode"`

	Ongoing   []Enrollment                `gorm:"foreignKey:StudentID;constraint:OnDelete:CASCADE" json:"ongoing"`
	Completed datatypes.JSONSlice[string] `json:"completed"`

	// Version guards SaveStudent against lost updates.
	Version   int       `gorm:"not null;default:0" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Role == "" {
		s.Role = RoleStudent
	}
	return nil
}

// FindEnrollment returns the index of the ongoing record for courseID, or -1.
func (s *Student) FindEnrollment(courseID string) int {
	for i := range s.Ongoing {
		if s.Ongoing[i].CourseID == courseID {
			return i
		}
	}
	return -1
}

func (s *Student) HasCompleted(title string) bool {
	for _, t := range s.Completed {
		if t == title {
			return true
		}
	}
	return false
}

// Complete drops the ongoing record for courseID and records title as
// completed. A title already present is not appended again.
func (s *Student) Complete(courseID, title string) {
	kept := s.Ongoing[:0]
	for _, e := range s.Ongoing {
		if e.CourseID != courseID {
			kept = append(kept, e)
		}
	}
	s.Ongoing = kept
	if !s.HasCompleted(title) {
		s.Completed = append(s.Completed, title)
	}
}
