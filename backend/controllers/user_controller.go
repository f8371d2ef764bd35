package controllers

import (
	"coursetracker/backend/middleware"
	"coursetracker/backend/progress"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// UserController serves the admin student-management pages.
type UserController struct {
	Enrollment *services.EnrollmentService
	Log        *utils.Logger
}

func NewUserController(enrollment *services.EnrollmentService, log *utils.Logger) *UserController {
	return &UserController{Enrollment: enrollment, Log: log}
}

// FindStudent godoc
// @Summary Find a student by register number
// @Description Case-insensitive exact match
// @Tags admin
// @Produce json
// @Param rollNumber path string true "Register number"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/student/{rollNumber} [get]
func (uc *UserController) FindStudent(c *fiber.Ctx) error {
	student, err := uc.Enrollment.FindStudentByRegisterNo(c.UserContext(), middleware.CurrentSession(c), c.Params("rollNumber"))
	if err != nil {
		return serviceError(c, uc.Log, err)
	}
	return utils.OK(c, "", student)
}

// EnrollStudent godoc
// @Summary Enroll a student in a course
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/enroll-student [post]
func (uc *UserController) EnrollStudent(c *fiber.Ctx) error {
	var input struct {
		StudentID string `json:"studentId"`
		CourseID  string `json:"courseId"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	student, err := uc.Enrollment.Enroll(c.UserContext(), middleware.CurrentSession(c), input.StudentID, input.CourseID)
	if err != nil {
		return serviceError(c, uc.Log, err)
	}
	return utils.OK(c, "Student enrolled", student)
}

// UpdateTopic godoc
// @Summary Set a student's current topic
// @Description The value "Completed" marks the current topic complete instead
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/update-topic [put]
func (uc *UserController) UpdateTopic(c *fiber.Ctx) error {
	var input struct {
		RollNumber string `json:"rollNumber"`
		CourseID   string `json:"courseId"`
		Topic      string `json:"topic"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if input.Topic == "" {
		return utils.BadRequest(c, "topic is required")
	}

	update, err := uc.Enrollment.MarkProgressByRegisterNo(
		c.UserContext(),
		middleware.CurrentSession(c),
		input.RollNumber,
		input.CourseID,
		progress.ParseSignal(input.Topic),
	)
	if err != nil {
		return serviceError(c, uc.Log, err)
	}
	return utils.OK(c, "Progress updated", update)
}
