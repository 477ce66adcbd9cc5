package handlers

import (
	"errors"
	"strconv"

	"github.com/yuneshbyte01/placement-system/internal/adapters/http/middleware"
	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"
	"github.com/yuneshbyte01/placement-system/internal/core/services"
	"github.com/yuneshbyte01/placement-system/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// OrganizationHandler handles organization profile, job posting and
// application workflow endpoints
type OrganizationHandler struct {
	organizationService *services.OrganizationService
	applicationService  *services.ApplicationService
}

// NewOrganizationHandler creates a new organization handler
func NewOrganizationHandler(organizationService *services.OrganizationService, applicationService *services.ApplicationService) *OrganizationHandler {
	return &OrganizationHandler{
		organizationService: organizationService,
		applicationService:  applicationService,
	}
}

// CreateProfile handles organization profile creation
// @Summary Create organization profile
// @Tags Organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /api/organization/profile [post]
func (h *OrganizationHandler) CreateProfile(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	var input services.OrganizationProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.CompanyName == "" {
		return response.BadRequest(c, "Company name is required")
	}

	if err := h.organizationService.CreateProfile(c.Context(), principal.ID, &input); err != nil {
		if errors.Is(err, services.ErrProfileExists) {
			return response.BadRequest(c, "Profile already exists")
		}
		return response.InternalServerError(c, "Failed to create profile")
	}

	return response.Created(c, "Profile created successfully")
}

// GetProfile returns the logged-in organization's profile
// @Summary Get organization profile
// @Tags Organization
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.OrganizationResponse
// @Failure 404 {object} map[string]string
// @Router /api/organization/profile [get]
func (h *OrganizationHandler) GetProfile(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	profile, err := h.organizationService.GetProfile(c.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "Organization profile not found")
		}
		return response.InternalServerError(c, "Failed to get profile")
	}

	return c.JSON(profile)
}

// UpdateProfile updates the logged-in organization's profile
// @Summary Update organization profile
// @Tags Organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/organization/profile [put]
func (h *OrganizationHandler) UpdateProfile(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	var input services.OrganizationProfileInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if err := h.organizationService.UpdateProfile(c.Context(), principal.ID, &input); err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "Organization profile not found")
		}
		return response.InternalServerError(c, "Failed to update profile")
	}

	return response.Message(c, "Profile updated successfully")
}

// CreateJobPosting creates a job posting for the logged-in organization
// @Summary Create job posting
// @Tags Organization
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 201 {object} models.JobPostingResponse
// @Failure 400 {object} map[string]string
// @Router /api/organization/jobs [post]
func (h *OrganizationHandler) CreateJobPosting(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	var input services.JobPostingInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	if input.Title == "" || input.Description == "" {
		return response.BadRequest(c, "Title and description are required")
	}

	job, err := h.organizationService.CreateJobPosting(c.Context(), principal.ID, &input)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "Organization profile not found")
		}
		return response.InternalServerError(c, "Failed to create job posting")
	}

	return c.Status(fiber.StatusCreated).JSON(job)
}

// ListJobPostings lists the logged-in organization's job postings
// @Summary List own job postings
// @Tags Organization
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.JobPostingResponse
// @Failure 404 {object} map[string]string
// @Router /api/organization/jobs [get]
func (h *OrganizationHandler) ListJobPostings(c *fiber.Ctx) error {
	principal, _ := middleware.GetPrincipal(c)

	jobs, err := h.organizationService.ListJobPostings(c.Context(), principal.ID)
	if err != nil {
		if errors.Is(err, services.ErrProfileNotFound) {
			return response.NotFound(c, "Organization profile not found")
		}
		return response.InternalServerError(c, "Failed to list job postings")
	}

	return c.JSON(jobs)
}

// ShortlistApplicant moves an application to SHORTLISTED
// @Summary Shortlist an applicant
// @Tags Organization
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job posting ID"
// @Param applicationId path int true "Application ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/organization/jobs/{jobId}/applications/{applicationId}/shortlist [put]
func (h *OrganizationHandler) ShortlistApplicant(c *fiber.Ctx) error {
	return h.updateApplicationStatus(c, models.StatusShortlisted)
}

// SelectApplicant moves an application to SELECTED
// @Summary Select an applicant
// @Tags Organization
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job posting ID"
// @Param applicationId path int true "Application ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/organization/jobs/{jobId}/applications/{applicationId}/select [put]
func (h *OrganizationHandler) SelectApplicant(c *fiber.Ctx) error {
	return h.updateApplicationStatus(c, models.StatusSelected)
}

// RejectApplicant moves an application to REJECTED
// @Summary Reject an applicant
// @Tags Organization
// @Produce json
// @Security BearerAuth
// @Param jobId path int true "Job posting ID"
// @Param applicationId path int true "Application ID"
// @Success 200 {object} map[string]interface{}
// @Router /api/organization/jobs/{jobId}/applications/{applicationId}/reject [put]
func (h *OrganizationHandler) RejectApplicant(c *fiber.Ctx) error {
	return h.updateApplicationStatus(c, models.StatusRejected)
}

// updateApplicationStatus runs the status workflow with all validation checks
func (h *OrganizationHandler) updateApplicationStatus(c *fiber.Ctx, newStatus string) error {
	principal, _ := middleware.GetPrincipal(c)

	jobID, err := strconv.ParseUint(c.Params("jobId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid job ID")
	}
	applicationID, err := strconv.ParseUint(c.Params("applicationId"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid application ID")
	}

	result, err := h.applicationService.UpdateStatus(
		c.Context(), principal.ID, principal.Role, uint(jobID), uint(applicationID), newStatus)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrgRoleRequired):
			return response.Forbidden(c, "Access denied: ORGANIZATION role required")
		case errors.Is(err, services.ErrJobNotFound):
			return response.NotFound(c, "Job posting not found")
		case errors.Is(err, services.ErrNotJobOwner):
			return response.Forbidden(c, "You do not own this job posting")
		case errors.Is(err, services.ErrApplicationNotFound):
			return response.NotFound(c, "Application not found")
		case errors.Is(err, services.ErrApplicationJobMismatch):
			return response.BadRequest(c, "Application does not belong to this job")
		case errors.Is(err, services.ErrApplicationFinalized):
			return response.BadRequest(c, "Cannot update application already finalized")
		case errors.Is(err, services.ErrInvalidStatus):
			return response.BadRequest(c, "Invalid application status")
		default:
			return response.InternalServerError(c, "Failed to update application status")
		}
	}

	return c.JSON(fiber.Map{
		"message":       "Application status updated",
		"applicationId": result.ApplicationID,
		"newStatus":     result.NewStatus,
	})
}
