package services

import (
	"context"
	"errors"
	"log"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"
	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Admin errors
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrOrganizationNotFound = errors.New("organization not found")
)

// AdminService handles administrative operations
type AdminService struct {
	userRepo         repositories.UserRepository
	organizationRepo repositories.OrganizationRepository
	jobPostingRepo   repositories.JobPostingRepository
	applicationRepo  repositories.ApplicationRepository
}

// NewAdminService creates a new admin service
func NewAdminService(
	userRepo repositories.UserRepository,
	organizationRepo repositories.OrganizationRepository,
	jobPostingRepo repositories.JobPostingRepository,
	applicationRepo repositories.ApplicationRepository,
) *AdminService {
	return &AdminService{
		userRepo:         userRepo,
		organizationRepo: organizationRepo,
		jobPostingRepo:   jobPostingRepo,
		applicationRepo:  applicationRepo,
	}
}

// ListUsers returns all users
func (s *AdminService) ListUsers(ctx context.Context) ([]*models.UserResponse, error) {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.UserResponse, 0, len(users))
	for _, user := range users {
		responses = append(responses, user.ToResponse())
	}
	return responses, nil
}

// SetUserActive toggles the active flag on a user account
func (s *AdminService) SetUserActive(ctx context.Context, userID uint, active bool) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	user.IsActive = active
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	log.Printf("✅ User %d active=%t", userID, active)
	return nil
}

// ListOrganizations returns all organization profiles
func (s *AdminService) ListOrganizations(ctx context.Context) ([]*models.OrganizationResponse, error) {
	orgs, err := s.organizationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, org.ToResponse())
	}
	return responses, nil
}

// ListPendingOrganizations returns organizations awaiting approval
func (s *AdminService) ListPendingOrganizations(ctx context.Context) ([]*models.OrganizationResponse, error) {
	orgs, err := s.organizationRepo.ListPending(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.OrganizationResponse, 0, len(orgs))
	for _, org := range orgs {
		responses = append(responses, org.ToResponse())
	}
	return responses, nil
}

// SetOrganizationApproved sets the approval flag on an organization profile
func (s *AdminService) SetOrganizationApproved(ctx context.Context, orgID uint, approved bool) error {
	org, err := s.organizationRepo.GetByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrOrganizationNotFound
		}
		return err
	}

	org.Approved = approved
	if err := s.organizationRepo.Update(ctx, org); err != nil {
		return err
	}

	log.Printf("✅ Organization %d approved=%t", orgID, approved)
	return nil
}

// ListJobPostings returns all job postings across organizations
func (s *AdminService) ListJobPostings(ctx context.Context) ([]*models.JobPostingResponse, error) {
	jobs, err := s.jobPostingRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.JobPostingResponse, 0, len(jobs))
	for _, job := range jobs {
		responses = append(responses, job.ToResponse())
	}
	return responses, nil
}

// ListApplications returns all applications across organizations
func (s *AdminService) ListApplications(ctx context.Context) ([]*models.AdminApplicationResponse, error) {
	applications, err := s.applicationRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.AdminApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, application.ToAdminResponse())
	}
	return responses, nil
}

// GetApplication returns a single application by ID
func (s *AdminService) GetApplication(ctx context.Context, id uint) (*models.AdminApplicationResponse, error) {
	application, err := s.applicationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return application.ToAdminResponse(), nil
}
