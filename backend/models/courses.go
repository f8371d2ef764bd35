package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TopicLevel string

const (
	LevelBasic        TopicLevel = "Basic"
	LevelIntermediate TopicLevel = "Intermediate"
	LevelAdvanced     TopicLevel = "Advanced"
)

// Valid reports whether l is one of the known levels.
func (l TopicLevel) Valid() bool {
	switch l {
	case LevelBasic, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

type Course struct {
	ID            string    `gorm:"primaryKey;size:36" json:"id"`
	Title         string    `gorm:"uniqueIndex;not null" json:"title"`
	Topics        []Topic   `gorm:"constraint:OnDelete:CASCADE" json:"topics"`
	EnrolledCount int       `gorm:"not null;default:0" json:"enrolledStudents"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// Topic order is defined by SequenceOrder, starting at 0.
type Topic struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	CourseID      string     `gorm:"index;size:36;not null" json:"courseId"`
	Title         string     `gorm:"not null" json:"title"`
	Level         TopicLevel `gorm:"default:Basic" json:"level"`
	SequenceOrder int        `gorm:"not null" json:"sequenceOrder"`
}

func (c *Course) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// TopicTitles returns the course's topic titles in progression order.
func (c Course) TopicTitles() []string {
	titles := make([]string, 0, len(c.Topics))
	for _, t := range c.Topics {
		titles = append(titles, t.Title)
	}
	return titles
}
