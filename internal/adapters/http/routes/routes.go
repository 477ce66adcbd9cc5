package routes

import (
	"github.com/yuneshbyte01/placement-system/internal/adapters/http/handlers"
	"github.com/yuneshbyte01/placement-system/internal/adapters/http/middleware"
	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/repositories"
	"github.com/yuneshbyte01/placement-system/internal/config"
	"github.com/yuneshbyte01/placement-system/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	studentRepo := repositories.NewStudentRepository(db)
	organizationRepo := repositories.NewOrganizationRepository(db)
	jobPostingRepo := repositories.NewJobPostingRepository(db)
	applicationRepo := repositories.NewApplicationRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	studentService := services.NewStudentService(studentRepo, cfg)
	organizationService := services.NewOrganizationService(organizationRepo, jobPostingRepo)
	applicationService := services.NewApplicationService(applicationRepo, jobPostingRepo, studentRepo)
	adminService := services.NewAdminService(userRepo, organizationRepo, jobPostingRepo, applicationRepo)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	studentHandler := handlers.NewStudentHandler(studentService, applicationService)
	organizationHandler := handlers.NewOrganizationHandler(organizationService, applicationService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Health check & root routes (public)
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Static assets (public)
	app.Static("/", "./static")

	// API group: every request passes the authentication gate, then the
	// path-prefix authorization policy, before reaching a handler
	api := app.Group("/api",
		middleware.Authenticate(cfg, userRepo),
		middleware.Authorize(),
	)

	setupAuthRoutes(api.Group("/auth"), authHandler)
	setupStudentRoutes(api.Group("/student"), studentHandler)
	setupOrganizationRoutes(api.Group("/organization"), organizationHandler)
	setupAdminRoutes(api.Group("/admin"), adminHandler)
}

// setupAuthRoutes configures authentication routes (public, rate limited)
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler) {
	router.Use(middleware.AuthRateLimiter())
	router.Post("/register", handler.Register)
	router.Post("/login", handler.Login)
}

// setupStudentRoutes configures student routes (STUDENT role)
func setupStudentRoutes(router fiber.Router, handler *handlers.StudentHandler) {
	router.Post("/profile", handler.CreateProfile)
	router.Get("/profile", handler.GetProfile)
	router.Put("/profile", handler.UpdateProfile)
	router.Post("/upload-resume", handler.UploadResume)
	router.Post("/apply/:jobId", handler.Apply)
	router.Get("/applications", handler.ListApplications)
}

// setupOrganizationRoutes configures organization routes (ORGANIZATION role)
func setupOrganizationRoutes(router fiber.Router, handler *handlers.OrganizationHandler) {
	router.Post("/profile", handler.CreateProfile)
	router.Get("/profile", handler.GetProfile)
	router.Put("/profile", handler.UpdateProfile)
	router.Post("/jobs", handler.CreateJobPosting)
	router.Get("/jobs", handler.ListJobPostings)
	router.Put("/jobs/:jobId/applications/:applicationId/shortlist", handler.ShortlistApplicant)
	router.Put("/jobs/:jobId/applications/:applicationId/select", handler.SelectApplicant)
	router.Put("/jobs/:jobId/applications/:applicationId/reject", handler.RejectApplicant)
}

// setupAdminRoutes configures admin routes (ADMIN role)
func setupAdminRoutes(router fiber.Router, handler *handlers.AdminHandler) {
	router.Get("/users", handler.ListUsers)
	router.Put("/users/:id/deactivate", handler.DeactivateUser)
	router.Put("/users/:id/activate", handler.ActivateUser)
	router.Get("/organizations", handler.ListOrganizations)
	router.Get("/organizations/pending", handler.ListPendingOrganizations)
	router.Put("/organizations/:id/approve", handler.ApproveOrganization)
	router.Put("/organizations/:id/reject", handler.RejectOrganization)
	router.Get("/jobs", handler.ListJobPostings)
	router.Get("/applications", handler.ListApplications)
	router.Get("/applications/:id", handler.GetApplication)
}
