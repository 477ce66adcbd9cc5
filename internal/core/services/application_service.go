package services

import (
	"context"
	"errors"
	"log"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"
	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/repositories"

	"gorm.io/gorm"
)

// Application errors
var (
	ErrStudentProfileNotFound = errors.New("student profile not found")
	ErrJobNotFound            = errors.New("job posting not found")
	ErrAlreadyApplied         = errors.New("already applied for this job")
	ErrOrgRoleRequired        = errors.New("access denied: ORGANIZATION role required")
	ErrNotJobOwner            = errors.New("you do not own this job posting")
	ErrApplicationNotFound    = errors.New("application not found")
	ErrApplicationJobMismatch = errors.New("application does not belong to this job")
	ErrApplicationFinalized   = errors.New("cannot update application already finalized")
	ErrInvalidStatus          = errors.New("invalid application status")
)

// ApplicationService handles job applications and their status workflow
type ApplicationService struct {
	applicationRepo repositories.ApplicationRepository
	jobPostingRepo  repositories.JobPostingRepository
	studentRepo     repositories.StudentRepository
}

// NewApplicationService creates a new application service
func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobPostingRepo repositories.JobPostingRepository,
	studentRepo repositories.StudentRepository,
) *ApplicationService {
	return &ApplicationService{
		applicationRepo: applicationRepo,
		jobPostingRepo:  jobPostingRepo,
		studentRepo:     studentRepo,
	}
}

// Apply applies the student behind userID to a job posting
func (s *ApplicationService) Apply(ctx context.Context, userID, jobID uint) (uint, error) {
	// 1. Resolve student profile
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrStudentProfileNotFound
		}
		return 0, err
	}

	// 2. Resolve job posting
	job, err := s.jobPostingRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ErrJobNotFound
		}
		return 0, err
	}

	// 3. One application per (student, job)
	exists, err := s.applicationRepo.ExistsByStudentAndJob(ctx, student.ID, job.ID)
	if err != nil {
		return 0, err
	}
	if exists {
		return 0, ErrAlreadyApplied
	}

	// 4. Create with the initial status
	application := &models.Application{
		StudentID:    student.ID,
		JobPostingID: job.ID,
		Status:       models.StatusApplied,
	}

	if err := s.applicationRepo.Create(ctx, application); err != nil {
		return 0, err
	}

	log.Printf("✅ Application %d created: student %d -> job %d", application.ID, student.ID, job.ID)
	return application.ID, nil
}

// ListForStudent lists the applications of the student behind userID
func (s *ApplicationService) ListForStudent(ctx context.Context, userID uint) ([]*models.ApplicationResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrStudentProfileNotFound
		}
		return nil, err
	}

	applications, err := s.applicationRepo.ListByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}

	responses := make([]*models.ApplicationResponse, 0, len(applications))
	for _, application := range applications {
		responses = append(responses, application.ToResponse())
	}
	return responses, nil
}

// StatusUpdateResult confirms a processed status transition
type StatusUpdateResult struct {
	ApplicationID uint   `json:"applicationId"`
	NewStatus     string `json:"newStatus"`
}

// UpdateStatus moves an application to newStatus on behalf of the acting
// organization user. Ownership of the job posting is checked independently
// of the role, and terminal statuses are never overwritten.
func (s *ApplicationService) UpdateStatus(ctx context.Context, actorID uint, actorRole string, jobID, applicationID uint, newStatus string) (*StatusUpdateResult, error) {
	// 1. Require ORGANIZATION role
	if actorRole != models.RoleOrganization {
		return nil, ErrOrgRoleRequired
	}

	switch newStatus {
	case models.StatusShortlisted, models.StatusSelected, models.StatusRejected:
	default:
		return nil, ErrInvalidStatus
	}

	// 2. Load job and verify ownership via the organization profile's user
	job, err := s.jobPostingRepo.GetByID(ctx, jobID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	if job.Organization == nil || job.Organization.UserID != actorID {
		return nil, ErrNotJobOwner
	}

	// 3. Load the application and ensure it belongs to the job
	application, err := s.applicationRepo.GetByID(ctx, applicationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	if application.JobPostingID != jobID {
		return nil, ErrApplicationJobMismatch
	}

	// 4. Terminal guard
	if models.IsFinalStatus(application.Status) {
		return nil, ErrApplicationFinalized
	}

	// 5. Guarded write; a concurrent finalization makes this a no-op
	updated, err := s.applicationRepo.SetStatusIfNotFinal(ctx, application.ID, newStatus)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, ErrApplicationFinalized
	}

	log.Printf("✅ Application %d status changed: %s -> %s", application.ID, application.Status, newStatus)

	return &StatusUpdateResult{
		ApplicationID: application.ID,
		NewStatus:     newStatus,
	}, nil
}
