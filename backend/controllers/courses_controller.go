package controllers

import (
	"coursetracker/backend/middleware"
	"coursetracker/backend/models"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type CoursesController struct {
	Enrollment *services.EnrollmentService
	Log        *utils.Logger
}

func NewCoursesController(enrollment *services.EnrollmentService, log *utils.Logger) *CoursesController {
	return &CoursesController{Enrollment: enrollment, Log: log}
}

// ListCourses godoc
// @Summary List courses
// @Tags courses
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /courses [get]
// @Router /admin/courses [get]
func (cc *CoursesController) ListCourses(c *fiber.Ctx) error {
	courses, err := cc.Enrollment.ListCourses(c.UserContext())
	if err != nil {
		return serviceError(c, cc.Log, err)
	}
	return utils.OK(c, "", courses)
}

// CreateCourse godoc
// @Summary Create a course
// @Tags admin
// @Accept json
// @Produce json
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/add-course [post]
func (cc *CoursesController) CreateCourse(c *fiber.Ctx) error {
	var input struct {
		Title string `json:"title"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Enrollment.CreateCourse(c.UserContext(), middleware.CurrentSession(c), input.Title)
	if err != nil {
		return serviceError(c, cc.Log, err)
	}
	return utils.Created(c, "Course created", course)
}

// AddTopic godoc
// @Summary Append a topic to a course
// @Description Level defaults to Basic
// @Tags admin
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /admin/add-topic [post]
func (cc *CoursesController) AddTopic(c *fiber.Ctx) error {
	var input struct {
		CourseID string            `json:"courseId"`
		Topic    string            `json:"topic"`
		Level    models.TopicLevel `json:"level"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	course, err := cc.Enrollment.AddTopic(c.UserContext(), middleware.CurrentSession(c), input.CourseID, input.Topic, input.Level)
	if err != nil {
		return serviceError(c, cc.Log, err)
	}
	return utils.OK(c, "Topic added", course)
}
