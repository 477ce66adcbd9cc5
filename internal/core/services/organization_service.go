package services

import (
	"context"
	"errors"
	"log"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"
	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// OrganizationService handles organization profiles and job postings
type OrganizationService struct {
	organizationRepo repositories.OrganizationRepository
	jobPostingRepo   repositories.JobPostingRepository
}

// NewOrganizationService creates a new organization service
func NewOrganizationService(
	organizationRepo repositories.OrganizationRepository,
	jobPostingRepo repositories.JobPostingRepository,
) *OrganizationService {
	return &OrganizationService{
		organizationRepo: organizationRepo,
		jobPostingRepo:   jobPostingRepo,
	}
}

// OrganizationProfileInput represents profile create/update input
type OrganizationProfileInput struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Description string `json:"description"`
}

// JobPostingInput represents job posting create input
type JobPostingInput struct {
	Title               string `json:"title"`
	Description         string `json:"description"`
	SkillsRequired      string `json:"skills_required"`
	EligibilityCriteria string `json:"eligibility_criteria"`
}

// CreateProfile creates the organization profile for a user
func (s *OrganizationService) CreateProfile(ctx context.Context, userID uint, input *OrganizationProfileInput) error {
	exists, err := s.organizationRepo.ExistsByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if exists {
		return ErrProfileExists
	}

	org := &models.Organization{
		UserID:      userID,
		CompanyName: input.CompanyName,
		Industry:    input.Industry,
		Location:    input.Location,
		Description: input.Description,
	}

	if err := s.organizationRepo.Create(ctx, org); err != nil {
		return err
	}

	log.Printf("✅ Organization profile created for user %d: %s", userID, org.CompanyName)
	return nil
}

// GetProfile returns the organization profile for a user
func (s *OrganizationService) GetProfile(ctx context.Context, userID uint) (*models.OrganizationResponse, error) {
	org, err := s.organizationRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return org.ToResponse(), nil
}

// UpdateProfile updates the organization profile for a user
func (s *OrganizationService) UpdateProfile(ctx context.Context, userID uint, input *OrganizationProfileInput) error {
	org, err := s.organizationRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	org.CompanyName = input.CompanyName
	org.Industry = input.Industry
	org.Location = input.Location
	org.Description = input.Description

	return s.organizationRepo.Update(ctx, org)
}

// CreateJobPosting creates a job posting owned by the user's organization
func (s *OrganizationService) CreateJobPosting(ctx context.Context, userID uint, input *JobPostingInput) (*models.JobPostingResponse, error) {
	org, err := s.organizationRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	job := &models.JobPosting{
		Title:               input.Title,
		Description:         input.Description,
		SkillsRequired:      input.SkillsRequired,
		EligibilityCriteria: input.EligibilityCriteria,
		OrganizationID:      org.ID,
	}

	if err := s.jobPostingRepo.Create(ctx, job); err != nil {
		return nil, err
	}

	log.Printf("✅ Job posting %d created by organization %d", job.ID, org.ID)

	job.Organization = org
	return job.ToResponse(), nil
}

// ListJobPostings lists job postings owned by the user's organization
func (s *OrganizationService) ListJobPostings(ctx context.Context, userID uint) ([]*models.JobPostingResponse, error) {
	org, err := s.organizationRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}

	jobs, err := s.jobPostingRepo.ListByOrganization(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.JobPostingResponse, 0, len(jobs))
	for _, job := range jobs {
		job.Organization = org
		responses = append(responses, job.ToResponse())
	}
	return responses, nil
}
