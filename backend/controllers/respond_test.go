package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusFor(t *testing.T) {
	cases := map[error]int{
		services.ErrNotFound:           fiber.StatusNotFound,
		services.ErrDuplicateCourse:    fiber.StatusConflict,
		services.ErrDuplicateStudent:   fiber.StatusConflict,
		services.ErrAlreadyEnrolled:    fiber.StatusConflict,
		services.ErrConflict:           fiber.StatusConflict,
		services.ErrInvalidInput:       fiber.StatusBadRequest,
		services.ErrInvalidCredentials: fiber.StatusUnauthorized,
		services.ErrForbidden:          fiber.StatusForbidden,
		errors.New("boom"):             fiber.StatusInternalServerError,
	}
	for err, want := range cases {
		assert.Equal(t, want, statusFor(fmt.Errorf("wrapped: %w", err)), err.Error())
	}
}

func TestServiceError_Envelope(t *testing.T) {
	app := fiber.New()
	app.Get("/missing", func(c *fiber.Ctx) error {
		return serviceError(c, utils.NewNopLogger(), fmt.Errorf("course c1: %w", services.ErrNotFound))
	})
	app.Get("/dup", func(c *fiber.Ctx) error {
		return serviceError(c, utils.NewNopLogger(), fmt.Errorf("course %q: %w", "Go", services.ErrDuplicateCourse))
	})
	app.Get("/boom", func(c *fiber.Ctx) error {
		return serviceError(c, utils.NewNopLogger(), errors.New("db down"))
	})

	tests := []struct {
		path    string
		status  int
		message string
	}{
		{"/missing", fiber.StatusNotFound, "course c1: not found"},
		{"/dup", fiber.StatusConflict, `course "Go": course already exists`},
		{"/boom", fiber.StatusInternalServerError, "Internal server error"},
	}
	for _, tt := range tests {
		resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
		require.NoError(t, err)
		assert.Equal(t, tt.status, resp.StatusCode)

		var body utils.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.False(t, body.Success)
		assert.Equal(t, tt.message, body.Message)
	}
}
