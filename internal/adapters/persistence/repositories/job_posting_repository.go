package repositories

import (
	"context"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// jobPostingRepository implements JobPostingRepository interface
type jobPostingRepository struct {
	db *gorm.DB
}

// NewJobPostingRepository creates a new job posting repository
func NewJobPostingRepository(db *gorm.DB) JobPostingRepository {
	return &jobPostingRepository{db: db}
}

// Create creates a new job posting
func (r *jobPostingRepository) Create(ctx context.Context, job *models.JobPosting) error {
	return r.db.WithContext(ctx).Create(job).Error
}

// GetByID gets a job posting by ID, with its owning organization
func (r *jobPostingRepository) GetByID(ctx context.Context, id uint) (*models.JobPosting, error) {
	var job models.JobPosting
	err := r.db.WithContext(ctx).Preload("Organization").Where("id = ?", id).First(&job).Error
	if err != nil {
		return nil, err
	}
	return &job, nil
}

// ListByOrganization lists job postings owned by one organization
func (r *jobPostingRepository) ListByOrganization(ctx context.Context, organizationID uint) ([]*models.JobPosting, error) {
	var jobs []*models.JobPosting
	err := r.db.WithContext(ctx).
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&jobs).Error
	return jobs, err
}

// List lists all job postings
func (r *jobPostingRepository) List(ctx context.Context) ([]*models.JobPosting, error) {
	var jobs []*models.JobPosting
	err := r.db.WithContext(ctx).Preload("Organization").Order("created_at DESC").Find(&jobs).Error
	return jobs, err
}
