package handlers

import (
	"errors"
	"strconv"

	"github.com/yuneshbyte01/placement-system/internal/adapters/http/middleware"
	"github.com/yuneshbyte01/placement-system/internal/core/services"
	"github.com/yuneshbyte01/placement-system/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// StudentHandler handles student profile and application endpoints
type StudentHandler struct {
	studentService     *services.StudentService
	applicationService *services.ApplicationService
}

// NewStudentHandler creates a new student handler
func NewStudentHandler(studentService *services.StudentService, applicationService *services.ApplicationService) *StudentHandler {
	return &StudentHandler{
		studentService:     studentService,
		applicationService: applicationService,
	}
}

// CreateProfile handles student profile creation
// @Summary Create student profile
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/student/profile [post]
func (h *StudentHandler) CreateProfile(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	var input services.StudentProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.University == "" || input.Degree == "" {
		return response.BadRequest(c, "University and degree are required")
	}
	if input.GraduationYear < 1900 || input.GraduationYear > 2100 {
		return response.BadRequest(c, "Graduation year must be between 1900 and 2100")
	}

	if err := h.studentService.CreateProfile(c.Context(), principal.ID, &input); err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			return response.BadRequest(c, "Profile already exists")
		}
		return response.InternalServerError(c, "Failed to create profile")
	}

	return response.Created(c, "Profile created successfully")
}

// GetProfile returns the logged-in student's profile
// @Summary Get student profile
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.StudentResponse
// @Failure 404 {object} map[string]string
// @Router /api/student/profile [get]
func (h *StudentHandler) GetProfile(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	profile, err := h.studentService.GetProfile(c.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "Student profile not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}

	return c.JSON(profile)
}

// UpdateProfile updates the logged-in student's profile
// @Summary Update student profile
// @Tags Student
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/student/profile [put]
func (h *StudentHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	var input services.StudentProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.studentService.UpdateProfile(c.Context(), principal.ID, &input); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "Student profile not found")
		}
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.Message(c, "Profile updated successfully")
}

// UploadResume handles PDF resume upload
// @Summary Upload resume (PDF, max 5MB)
// @Tags Student
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Param file formData file true "PDF resume"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/student/upload-resume [post]
func (h *StudentHandler) UploadResume(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	file, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "Resume file is required")
	}

	path, err := h.studentService.UploadResume(c.Context(), principal.ID, principal.Email, file)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProfileNotFound):
			return response.NotFound(c, "Student profile not found")
		case errors.Is(err, services.ErrInvalidResume):
			return response.BadRequest(c, "Invalid file: only PDF under 5MB allowed")
		default:
			return response.InternalServerError(c, "Failed to upload resume")
		}
	}

	return c.JSON(fiber.Map{
		"message":     "Resume uploaded successfully",
		"resume_path": path,
	})
}

// Apply applies the logged-in student to a job posting
// @Summary Apply for a job
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job posting ID"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/student/apply/{jobId} [post]
func (h *StudentHandler) Apply(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	jobID, err := strconv.ParseUint(c.Params("jobId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid job ID")
	}

	applicationID, err := h.applicationService.Apply(c.Context(), principal.ID, uint(jobID))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrStudentProfileNotFound):
			return response.NotFound(c, "Student profile not found")
		case errors.Is(err, services.ErrJobNotFound):
			return response.NotFound(c, "Job posting not found")
		case errors.Is(err, services.ErrAlreadyApplied):
			return response.BadRequest(c, "Already applied for this job")
		default:
			return response.InternalServerError(c, "Failed to apply")
		}
	}

	return c.JSON(fiber.Map{
		"message":       "Applied successfully",
		"applicationId": applicationID,
	})
}

// ListApplications lists the logged-in student's applications
// @Summary List own applications
// @Tags Student
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.ApplicationResponse
// @Failure 404 {object} map[string]string
// @Router /api/student/applications [get]
func (h *StudentHandler) ListApplications(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	applications, err := h.applicationService.ListForStudent(c.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, services.ErrStudentProfileNotFound) {
			return response.NotFound(c, "Student profile not found")
		}
		return response.InternalServerError(c, "Failed to list applications")
	}

	return c.JSON(applications)
}
