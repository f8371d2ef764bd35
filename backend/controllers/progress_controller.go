package controllers

import (
	"coursetracker/backend/middleware"
	"coursetracker/backend/progress"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Enrollment *services.EnrollmentService
	Log        *utils.Logger
}

func NewProgressController(enrollment *services.EnrollmentService, log *utils.Logger) *ProgressController {
	return &ProgressController{Enrollment: enrollment, Log: log}
}

// GetDashboard godoc
// @Summary Student dashboard
// @Description Returns the student's profile with ongoing and completed courses
// @Tags student
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/dashboard/{studentId} [get]
func (pc *ProgressController) GetDashboard(c *fiber.Ctx) error {
	dashboard, err := pc.Enrollment.GetDashboard(c.UserContext(), middleware.CurrentSession(c), c.Params("studentId"))
	if err != nil {
		return serviceError(c, pc.Log, err)
	}
	return utils.OK(c, "", dashboard)
}

// GetSummary godoc
// @Summary Progress summary
// @Description Course counts, overall percentage and status bars against the live catalog
// @Tags student
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/summary/{studentId} [get]
func (pc *ProgressController) GetSummary(c *fiber.Ctx) error {
	summary, err := pc.Enrollment.GetProgressSummary(c.UserContext(), middleware.CurrentSession(c), c.Params("studentId"))
	if err != nil {
		return serviceError(c, pc.Log, err)
	}
	return utils.OK(c, "", summary)
}

// GetRoadmap godoc
// @Summary Course roadmap
// @Description Topics captured at enrollment, each Completed, In Progress or Locked
// @Tags student
// @Produce json
// @Param studentId path string true "Student ID"
// @Param courseId path string true "Course ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/roadmap/{studentId}/{courseId} [get]
func (pc *ProgressController) GetRoadmap(c *fiber.Ctx) error {
	roadmap, err := pc.Enrollment.GetRoadmap(
		c.UserContext(),
		middleware.CurrentSession(c),
		c.Params("studentId"),
		c.Params("courseId"),
	)
	if err != nil {
		return serviceError(c, pc.Log, err)
	}
	return utils.OK(c, "", roadmap)
}

type progressRequest struct {
	StudentID string `json:"studentId"`
	CourseID  string `json:"courseId"`
}

// studentID defaults to the caller when the body omits it.
func (r progressRequest) studentID(sess services.Session) string {
	if r.StudentID != "" {
		return r.StudentID
	}
	return sess.UserID
}

// Enroll godoc
// @Summary Enroll in a course
// @Tags student
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/enroll [post]
func (pc *ProgressController) Enroll(c *fiber.Ctx) error {
	var input progressRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sess := middleware.CurrentSession(c)
	student, err := pc.Enrollment.Enroll(c.UserContext(), sess, input.studentID(sess), input.CourseID)
	if err != nil {
		return serviceError(c, pc.Log, err)
	}
	return utils.OK(c, "Enrolled successfully", student)
}

// CompleteTopic godoc
// @Summary Mark the current topic complete
// @Description Advances one topic; completing the last topic moves the course to completed
// @Tags student
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/update-progress [post]
func (pc *ProgressController) CompleteTopic(c *fiber.Ctx) error {
	var input progressRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sess := middleware.CurrentSession(c)
	update, err := pc.Enrollment.MarkProgress(c.UserContext(), sess, input.studentID(sess), input.CourseID, progress.MarkComplete())
	if err != nil {
		return serviceError(c, pc.Log, err)
	}
	return utils.OK(c, "Progress updated", update)
}
