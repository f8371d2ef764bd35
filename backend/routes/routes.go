package routes

import (
	"coursetracker/backend/config"
	"coursetracker/backend/controllers"
	"coursetracker/backend/middleware"
	"coursetracker/backend/services"
	"coursetracker/backend/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

// NewApp builds the fiber app with global middleware and all routes.
func NewApp(cfg *config.Config, log *utils.Logger, enrollment *services.EnrollmentService, auth *services.AuthService) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "course-tracker",
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	app.Use(middleware.LoggingMiddleware(log))

	SetupRoutes(app, cfg, log, enrollment, auth)
	return app
}

func SetupRoutes(app *fiber.App, cfg *config.Config, log *utils.Logger, enrollment *services.EnrollmentService, auth *services.AuthService) {
	authMiddleware := middleware.AuthMiddleware(cfg)
	adminMiddleware := middleware.AdminMiddleware()

	// Auth routes
	authController := controllers.NewAuthController(auth, log)
	app.Post("/api/auth/register", authController.Register)
	app.Post("/api/auth/login", authController.Login)
	app.Put("/api/auth/profile", authMiddleware, authController.UpdateProfile)

	// Courses routes
	coursesController := controllers.NewCoursesController(enrollment, log)
	app.Get("/api/courses", authMiddleware, coursesController.ListCourses)

	// Student routes
	progressController := controllers.NewProgressController(enrollment, log)
	overviewController := controllers.NewOverviewController(enrollment, log)
	student := app.Group("/api/student", authMiddleware)
	student.Get("/dashboard/:studentId", progressController.GetDashboard)
	student.Get("/summary/:studentId", progressController.GetSummary)
	student.Get("/overview/:studentId", overviewController.CourseOverview)
	student.Get("/roadmap/:studentId/:courseId", progressController.GetRoadmap)
	student.Post("/enroll", progressController.Enroll)
	student.Post("/update-progress", progressController.CompleteTopic)

	// Admin routes
	userController := controllers.NewUserController(enrollment, log)
	analyticsController := controllers.NewAnalyticsController(enrollment, log)
	admin := app.Group("/api/admin", authMiddleware, adminMiddleware)
	admin.Post("/add-course", coursesController.CreateCourse)
	admin.Post("/add-topic", coursesController.AddTopic)
	admin.Get("/courses", coursesController.ListCourses)
	admin.Get("/student/:rollNumber", userController.FindStudent)
	admin.Post("/enroll-student", userController.EnrollStudent)
	admin.Put("/update-topic", userController.UpdateTopic)
	admin.Get("/analytics/enrollments", analyticsController.EnrollmentChart)
}
