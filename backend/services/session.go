package services

import (
	"fmt"

	"coursetracker/backend/models"
)

// Session identifies who is calling. Every service operation takes one
// explicitly.
type Session struct {
	UserID string
	Role   models.Role
}

// SystemSession is used by operator tooling.
func SystemSession() Session {
	return Session{UserID: "system", Role: models.RoleAdmin}
}

func (s Session) IsAdmin() bool {
	return s.Role == models.RoleAdmin
}

func (s Session) requireAdmin(op string) error {
	if !s.IsAdmin() {
		return fmt.Errorf("%s: admin role required: %w", op, ErrForbidden)
	}
	return nil
}

// requireSelfOrAdmin allows admins everything and students their own records.
func (s Session) requireSelfOrAdmin(op, studentID string) error {
	if s.IsAdmin() || (s.UserID != "" && s.UserID == studentID) {
		return nil
	}
	return fmt.Errorf("%s: student %s: %w", op, studentID, ErrForbidden)
}
