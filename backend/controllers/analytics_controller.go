package controllers

import (
	"coursetracker/backend/middleware"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AnalyticsController struct {
	Enrollment *services.EnrollmentService
	Log        *utils.Logger
}

func NewAnalyticsController(enrollment *services.EnrollmentService, log *utils.Logger) *AnalyticsController {
	return &AnalyticsController{Enrollment: enrollment, Log: log}
}

// EnrollmentChart godoc
// @Summary Enrolments per course
// @Description Pie chart data; counts never decrease
// @Tags admin
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/analytics/enrollments [get]
func (ac *AnalyticsController) EnrollmentChart(c *fiber.Ctx) error {
	points, err := ac.Enrollment.EnrollmentChart(c.UserContext(), middleware.CurrentSession(c))
	if err != nil {
		return serviceError(c, ac.Log, err)
	}
	return utils.OK(c, "", points)
}
