package services

import (
	"context"
	"fmt"
	"strings"

	"coursetracker/backend/config"
	"coursetracker/backend/models"
	"coursetracker/backend/utils"

	"golang.org/x/crypto/bcrypt"
)

type AuthService struct {
	students StudentStore
	cfg      *config.Config
	log      *utils.Logger
}

func NewAuthService(students StudentStore, cfg *config.Config, log *utils.Logger) *AuthService {
	return &AuthService{
		students: students,
		cfg:      cfg,
		log:      log.With("service", "AuthService"),
	}
}

type RegisterInput struct {
	FullName   string `json:"fullName"`
	RegisterNo string `json:"registerNo"`
	Department string `json:"department"`
	Mobile     string `json:"mobile"`
	Email      string `json:"email"`
	Password   string `json:"password"`
}

// ProfileUpdate carries the editable profile fields. Nil or blank fields
// keep their current value.
type ProfileUpdate struct {
	FullName   *string `json:"fullName"`
	Department *string `json:"department"`
	Mobile     *string `json:"mobile"`
	LinkedIn   *string `json:"linkedin"`
	GitHub     *string `json:"github"`
	LeetCode   *string `json:"leetcode"`
}

func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*models.Student, string, error) {
	in.Email = normalizeEmail(in.Email)
	in.FullName = strings.TrimSpace(in.FullName)
	in.RegisterNo = strings.TrimSpace(in.RegisterNo)
	if in.Email == "" || in.Password == "" || in.FullName == "" || in.RegisterNo == "" {
		return nil, "", fmt.Errorf("name, register number, email and password required: %w", ErrInvalidInput)
	}

	_, err := s.students.FindStudentByEmail(ctx, in.Email)
	switch {
	case err == nil:
		return nil, "", fmt.Errorf("email %s: %w", in.Email, ErrDuplicateStudent)
	case !isNotFound(err):
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	st := &models.Student{
		FullName:     in.FullName,
		RegisterNo:   in.RegisterNo,
		Department:   strings.TrimSpace(in.Department),
		Mobile:       strings.TrimSpace(in.Mobile),
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
	}
	if err := s.students.CreateStudent(ctx, st); err != nil {
		return nil, "", err
	}

	token, err := s.issueToken(st)
	if err != nil {
		return nil, "", err
	}
	s.log.Info("student registered", "student_id", st.ID, "register_no", st.RegisterNo)
	return st, token, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Student, string, error) {
	st, err := s.students.FindStudentByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if isNotFound(err) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(st.PasswordHash), []byte(password)); err != nil {
		s.log.Debug("login rejected", "student_id", st.ID)
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.issueToken(st)
	if err != nil {
		return nil, "", err
	}
	return st, token, nil
}

func (s *AuthService) UpdateProfile(ctx context.Context, sess Session, studentID string, upd ProfileUpdate) (*models.Student, error) {
	if err := sess.requireSelfOrAdmin("update profile", studentID); err != nil {
		return nil, err
	}
	load := func(ctx context.Context) (*models.Student, error) {
		return s.students.FindStudentByID(ctx, studentID)
	}
	return mutateStudent(ctx, s.students, s.log, load, func(st *models.Student) error {
		setIf(&st.FullName, upd.FullName)
		setIf(&st.Department, upd.Department)
		setIf(&st.Mobile, upd.Mobile)
		setIf(&st.LinkedIn, upd.LinkedIn)
		setIf(&st.GitHub, upd.GitHub)
		setIf(&st.LeetCode, upd.LeetCode)
		return nil
	})
}

// PromoteAdmin grants the admin role to the student registered under email.
func (s *AuthService) PromoteAdmin(ctx context.Context, sess Session, email string) (*models.Student, error) {
	if err := sess.requireAdmin("promote admin"); err != nil {
		return nil, err
	}
	email = normalizeEmail(email)
	if email == "" {
		return nil, fmt.Errorf("email required: %w", ErrInvalidInput)
	}

	load := func(ctx context.Context) (*models.Student, error) {
		return s.students.FindStudentByEmail(ctx, email)
	}
	st, err := mutateStudent(ctx, s.students, s.log, load, func(st *models.Student) error {
		st.Role = models.RoleAdmin
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("admin promoted", "student_id", st.ID, "by", sess.UserID)
	return st, nil
}

func (s *AuthService) issueToken(st *models.Student) (string, error) {
	token, err := utils.GenerateJWTToken(utils.Claims{UserID: st.ID, Role: string(st.Role)}, s.cfg)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func setIf(dst *string, v *string) {
	if v == nil {
		return
	}
	if trimmed := strings.TrimSpace(*v); trimmed != "" {
		*dst = trimmed
	}
}
