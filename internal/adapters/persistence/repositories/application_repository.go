package repositories

import (
	"context"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// applicationRepository implements ApplicationRepository interface
type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &applicationRepository{db: db}
}

// Create creates a new application
func (r *applicationRepository) Create(ctx context.Context, application *models.Application) error {
	return r.db.WithContext(ctx).Create(application).Error
}

// GetByID gets an application by ID
func (r *applicationRepository) GetByID(ctx context.Context, id uint) (*models.Application, error) {
	var application models.Application
	err := r.db.WithContext(ctx).
		Preload("Student.User").
		Preload("JobPosting.Organization").
		Where("id = ?", id).
		First(&application).Error
	if err != nil {
		return nil, err
	}
	return &application, nil
}

// ExistsByStudentAndJob checks if the student already applied to the job
func (r *applicationRepository) ExistsByStudentAndJob(ctx context.Context, studentID, jobPostingID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("student_id = ? AND job_posting_id = ?", studentID, jobPostingID).
		Count(&count).Error
	return count > 0, err
}

// ListByStudent lists a student's applications with job and company info
func (r *applicationRepository) ListByStudent(ctx context.Context, studentID uint) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Preload("JobPosting.Organization").
		Where("student_id = ?", studentID).
		Order("applied_at DESC").
		Find(&applications).Error
	return applications, err
}

// List lists all applications across organizations
func (r *applicationRepository) List(ctx context.Context) ([]*models.Application, error) {
	var applications []*models.Application
	err := r.db.WithContext(ctx).
		Preload("Student.User").
		Preload("JobPosting.Organization").
		Order("id").
		Find(&applications).Error
	return applications, err
}

// SetStatusIfNotFinal updates the status with a guard against terminal rows.
// The WHERE clause makes the check-and-write atomic, so two racing
// finalizations cannot both succeed.
func (r *applicationRepository) SetStatusIfNotFinal(ctx context.Context, id uint, status string) (bool, error) {
	result := r.db.WithContext(ctx).Model(&models.Application{}).
		Where("id = ? AND status NOT IN ?", id, []string{models.StatusSelected, models.StatusRejected}).
		Update("status", status)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
