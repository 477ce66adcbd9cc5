package repositories

import (
	"context"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"
)

// UserRepository defines user repository interface
type UserRepository interface {
	Create(ctx context.Context, user *models.User) error
	GetByID(ctx context.Context, id uint) (*models.User, error)
	GetActiveByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsActiveByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	List(ctx context.Context) ([]*models.User, error)
}

// StudentRepository defines student profile repository interface
type StudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetByUserID(ctx context.Context, userID uint) (*models.Student, error)
	ExistsByUserID(ctx context.Context, userID uint) (bool, error)
	Update(ctx context.Context, student *models.Student) error
}

// OrganizationRepository defines organization profile repository interface
type OrganizationRepository interface {
	Create(ctx context.Context, org *models.Organization) error
	GetByID(ctx context.Context, id uint) (*models.Organization, error)
	GetByUserID(ctx context.Context, userID uint) (*models.Organization, error)
	ExistsByUserID(ctx context.Context, userID uint) (bool, error)
	Update(ctx context.Context, org *models.Organization) error
	List(ctx context.Context) ([]*models.Organization, error)
	ListPending(ctx context.Context) ([]*models.Organization, error)
}

// JobPostingRepository defines job posting repository interface
type JobPostingRepository interface {
	Create(ctx context.Context, job *models.JobPosting) error
	GetByID(ctx context.Context, id uint) (*models.JobPosting, error)
	ListByOrganization(ctx context.Context, organizationID uint) ([]*models.JobPosting, error)
	List(ctx context.Context) ([]*models.JobPosting, error)
}

// ApplicationRepository defines application repository interface
type ApplicationRepository interface {
	Create(ctx context.Context, application *models.Application) error
	GetByID(ctx context.Context, id uint) (*models.Application, error)
	ExistsByStudentAndJob(ctx context.Context, studentID, jobPostingID uint) (bool, error)
	ListByStudent(ctx context.Context, studentID uint) ([]*models.Application, error)
	List(ctx context.Context) ([]*models.Application, error)
	// SetStatusIfNotFinal updates the status only while the stored row is not
	// in a terminal state. Returns false when no row was updated.
	SetStatusIfNotFinal(ctx context.Context, id uint, status string) (bool, error)
}
