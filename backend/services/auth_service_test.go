package services_test

import (
	"context"
	"testing"
	"time"

	"coursetracker/backend/config"
	"coursetracker/backend/models"
	"coursetracker/backend/services"
	"coursetracker/backend/store"
	"coursetracker/backend/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCfg = &config.Config{JWTSecret: "testsecret", JWTTTL: time.Hour}

func newAuthService(t *testing.T) *services.AuthService {
	t.Helper()
	db, err := utils.OpenMemoryDB(uuid.NewString())
	require.NoError(t, err)
	return services.NewAuthService(store.NewStudentRepo(db), testCfg, utils.NewNopLogger())
}

func registerInput(email string) services.RegisterInput {
	return services.RegisterInput{
		FullName:   "Asha Rao",
		RegisterNo: "21CS001",
		Department: "CSE",
		Mobile:     "9999999999",
		Email:      email,
		Password:   "s3cret",
	}
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	st, token, err := svc.Register(ctx, registerInput(" Asha@Example.com "))
	require.NoError(t, err)
	assert.Equal(t, "asha@example.com", st.Email)
	assert.Equal(t, models.RoleStudent, st.Role)
	assert.NotEqual(t, "s3cret", st.PasswordHash)

	claims, err := utils.ParseJWTToken(token, testCfg)
	require.NoError(t, err)
	assert.Equal(t, st.ID, claims.UserID)
	assert.Equal(t, string(models.RoleStudent), claims.Role)

	logged, _, err := svc.Login(ctx, "asha@example.com", "s3cret")
	require.NoError(t, err)
	assert.Equal(t, st.ID, logged.ID)

	_, _, err = svc.Login(ctx, "asha@example.com", "wrong")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)

	_, _, err = svc.Login(ctx, "nobody@example.com", "s3cret")
	assert.ErrorIs(t, err, services.ErrInvalidCredentials)
}

func TestRegister_Validation(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)

	in := registerInput("a@example.com")
	in.Password = ""
	_, _, err := svc.Register(ctx, in)
	assert.ErrorIs(t, err, services.ErrInvalidInput)

	_, _, err = svc.Register(ctx, registerInput("a@example.com"))
	require.NoError(t, err)
	_, _, err = svc.Register(ctx, registerInput("A@example.com"))
	assert.ErrorIs(t, err, services.ErrDuplicateStudent)
}

func TestUpdateProfile(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)
	st, _, err := svc.Register(ctx, registerInput("a@example.com"))
	require.NoError(t, err)
	other, _, err := svc.Register(ctx, registerInput("b@example.com"))
	require.NoError(t, err)
	sess := services.Session{UserID: st.ID, Role: models.RoleStudent}

	github := "asharao"
	got, err := svc.UpdateProfile(ctx, sess, st.ID, services.ProfileUpdate{GitHub: &github})
	require.NoError(t, err)
	assert.Equal(t, "asharao", got.GitHub)
	assert.Equal(t, "Asha Rao", got.FullName)

	blank := " "
	got, err = svc.UpdateProfile(ctx, sess, st.ID, services.ProfileUpdate{FullName: &blank, GitHub: &blank})
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.FullName)
	assert.Equal(t, "asharao", got.GitHub)

	_, err = svc.UpdateProfile(ctx, sess, other.ID, services.ProfileUpdate{GitHub: &github})
	assert.ErrorIs(t, err, services.ErrForbidden)
}

func TestPromoteAdmin(t *testing.T) {
	ctx := context.Background()
	svc := newAuthService(t)
	st, _, err := svc.Register(ctx, registerInput("a@example.com"))
	require.NoError(t, err)

	_, err = svc.PromoteAdmin(ctx, services.Session{UserID: st.ID, Role: models.RoleStudent}, "a@example.com")
	assert.ErrorIs(t, err, services.ErrForbidden)

	got, err := svc.PromoteAdmin(ctx, services.SystemSession(), "A@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.RoleAdmin, got.Role)

	_, token, err := svc.Login(ctx, "a@example.com", "s3cret")
	require.NoError(t, err)
	claims, err := utils.ParseJWTToken(token, testCfg)
	require.NoError(t, err)
	assert.Equal(t, string(models.RoleAdmin), claims.Role)

	_, err = svc.PromoteAdmin(ctx, services.SystemSession(), "missing@example.com")
	assert.ErrorIs(t, err, services.ErrNotFound)
}
