package controllers

import (
	"coursetracker/backend/middleware"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Auth *services.AuthService
	Log  *utils.Logger
}

func NewAuthController(auth *services.AuthService, log *utils.Logger) *AuthController {
	return &AuthController{Auth: auth, Log: log}
}

// Register godoc
// @Summary Register a new student
// @Tags auth
// @Accept json
// @Produce json
// @Param student body services.RegisterInput true "Registration data"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input services.RegisterInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	student, token, err := ac.Auth.Register(c.UserContext(), input)
	if err != nil {
		return serviceError(c, ac.Log, err)
	}

	return utils.Created(c, "Registration successful", fiber.Map{
		"token": token,
		"user":  student,
	})
}

// Login godoc
// @Summary Student login
// @Description Authenticate and return a JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	type LoginInput struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var input LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	student, token, err := ac.Auth.Login(c.UserContext(), input.Email, input.Password)
	if err != nil {
		return serviceError(c, ac.Log, err)
	}

	return utils.OK(c, "Login successful", fiber.Map{
		"token": token,
		"user":  student,
	})
}

// UpdateProfile godoc
// @Summary Update own profile
// @Description Blank fields keep their current value
// @Tags auth
// @Accept json
// @Produce json
// @Param profile body services.ProfileUpdate true "Profile fields"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/profile [put]
func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	var input services.ProfileUpdate
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	sess := middleware.CurrentSession(c)
	student, err := ac.Auth.UpdateProfile(c.UserContext(), sess, sess.UserID, input)
	if err != nil {
		return serviceError(c, ac.Log, err)
	}
	return utils.OK(c, "Profile updated", student)
}
