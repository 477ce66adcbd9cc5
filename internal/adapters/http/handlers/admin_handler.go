package handlers

import (
	"errors"
	"strconv"

	"github.com/yuneshbyte01/placement-system/internal/core/services"
	"github.com/yuneshbyte01/placement-system/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AdminHandler handles administrative endpoints
type AdminHandler struct {
	adminService *services.AdminService
}

// NewAdminHandler creates a new admin handler
func NewAdminHandler(adminService *services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

// ListUsers returns all users
// @Summary List all users
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.UserResponse
// @Router /api/admin/users [get]
func (h *AdminHandler) ListUsers(c *fiber.Ctx) error {
	users, err := h.adminService.ListUsers(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list users")
	}
	return c.JSON(users)
}

// DeactivateUser deactivates a user account
// @Summary Deactivate a user
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/users/{id}/deactivate [put]
func (h *AdminHandler) DeactivateUser(c *fiber.Ctx) error {
	return h.setUserActive(c, false, "User deactivated successfully")
}

// ActivateUser activates a user account
// @Summary Activate a user
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "User ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/users/{id}/activate [put]
func (h *AdminHandler) ActivateUser(c *fiber.Ctx) error {
	return h.setUserActive(c, true, "User activated successfully")
}

func (h *AdminHandler) setUserActive(c *fiber.Ctx, active bool, message string) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid user ID")
	}

	if err := h.adminService.SetUserActive(c.Context(), uint(id), active); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return response.NotFound(c, "User not found")
		}
		return response.InternalServerError(c, "Failed to update user")
	}

	return response.Message(c, message)
}

// ListOrganizations returns all organizations
// @Summary List all organizations
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.OrganizationResponse
// @Router /api/admin/organizations [get]
func (h *AdminHandler) ListOrganizations(c *fiber.Ctx) error {
	orgs, err := h.adminService.ListOrganizations(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list organizations")
	}
	return c.JSON(orgs)
}

// ListPendingOrganizations returns organizations awaiting approval
// @Summary List pending organizations
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.OrganizationResponse
// @Router /api/admin/organizations/pending [get]
func (h *AdminHandler) ListPendingOrganizations(c *fiber.Ctx) error {
	orgs, err := h.adminService.ListPendingOrganizations(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list organizations")
	}
	return c.JSON(orgs)
}

// ApproveOrganization approves an organization profile
// @Summary Approve an organization
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Organization ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/organizations/{id}/approve [put]
func (h *AdminHandler) ApproveOrganization(c *fiber.Ctx) error {
	return h.setOrganizationApproved(c, true, "Organization approved successfully")
}

// RejectOrganization rejects an organization profile
// @Summary Reject an organization
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Organization ID"
// @Success 200 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/admin/organizations/{id}/reject [put]
func (h *AdminHandler) RejectOrganization(c *fiber.Ctx) error {
	return h.setOrganizationApproved(c, false, "Organization rejected successfully")
}

func (h *AdminHandler) setOrganizationApproved(c *fiber.Ctx, approved bool, message string) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid organization ID")
	}

	if err := h.adminService.SetOrganizationApproved(c.Context(), uint(id), approved); err != nil {
		if errors.Is(err, services.ErrOrganizationNotFound) {
			return response.NotFound(c, "Organization not found")
		}
		return response.InternalServerError(c, "Failed to update organization")
	}

	return response.Message(c, message)
}

// ListJobPostings returns all job postings
// @Summary List all job postings
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.JobPostingResponse
// @Router /api/admin/jobs [get]
func (h *AdminHandler) ListJobPostings(c *fiber.Ctx) error {
	jobs, err := h.adminService.ListJobPostings(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list job postings")
	}
	return c.JSON(jobs)
}

// ListApplications returns all applications
// @Summary List all applications
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.AdminApplicationResponse
// @Router /api/admin/applications [get]
func (h *AdminHandler) ListApplications(c *fiber.Ctx) error {
	applications, err := h.adminService.ListApplications(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list applications")
	}
	return c.JSON(applications)
}

// GetApplication returns a single application by ID
// @Summary Get an application
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Application ID"
// @Success 200 {object} models.AdminApplicationResponse
// @Failure 404 {object} map[string]string
// @Router /api/admin/applications/{id} [get]
func (h *AdminHandler) GetApplication(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return response.BadRequest(c, "Invalid application ID")
	}

	application, err := h.adminService.GetApplication(c.Context(), uint(id))
	if err != nil {
		if errors.Is(err, services.ErrApplicationNotFound) {
			return response.NotFound(c, "Application not found")
		}
		return response.InternalServerError(c, "Failed to get application")
	}

	return c.JSON(application)
}
