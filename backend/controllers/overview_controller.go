package controllers

import (
	"coursetracker/backend/middleware"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type OverviewController struct {
	Enrollment *services.EnrollmentService
	Log        *utils.Logger
}

func NewOverviewController(enrollment *services.EnrollmentService, log *utils.Logger) *OverviewController {
	return &OverviewController{Enrollment: enrollment, Log: log}
}

// CourseOverview godoc
// @Summary Course overview
// @Description Every course tagged available, ongoing or completed for the student
// @Tags student
// @Produce json
// @Param studentId path string true "Student ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /student/overview/{studentId} [get]
func (oc *OverviewController) CourseOverview(c *fiber.Ctx) error {
	overview, err := oc.Enrollment.GetCourseOverview(c.UserContext(), middleware.CurrentSession(c), c.Params("studentId"))
	if err != nil {
		return serviceError(c, oc.Log, err)
	}
	return utils.OK(c, "", overview)
}
