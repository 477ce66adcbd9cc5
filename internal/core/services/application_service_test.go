package services

import (
	"context"
	"testing"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeStudentRepo is an in-memory StudentRepository for service tests
type fakeStudentRepo struct {
	students map[uint]*models.Student // keyed by UserID
	nextID   uint
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{students: make(map[uint]*models.Student), nextID: 1}
}

func (r *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	student.ID = r.nextID
	r.nextID++
	r.students[student.UserID] = student
	return nil
}

func (r *fakeStudentRepo) GetByUserID(_ context.Context, userID uint) (*models.Student, error) {
	if student, ok := r.students[userID]; ok {
		return student, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeStudentRepo) ExistsByUserID(_ context.Context, userID uint) (bool, error) {
	_, ok := r.students[userID]
	return ok, nil
}

func (r *fakeStudentRepo) Update(_ context.Context, student *models.Student) error {
	r.students[student.UserID] = student
	return nil
}

// fakeJobPostingRepo is an in-memory JobPostingRepository for service tests
type fakeJobPostingRepo struct {
	jobs   map[uint]*models.JobPosting
	nextID uint
}

func newFakeJobPostingRepo() *fakeJobPostingRepo {
	return &fakeJobPostingRepo{jobs: make(map[uint]*models.JobPosting), nextID: 1}
}

func (r *fakeJobPostingRepo) Create(_ context.Context, job *models.JobPosting) error {
	job.ID = r.nextID
	r.nextID++
	r.jobs[job.ID] = job
	return nil
}

func (r *fakeJobPostingRepo) GetByID(_ context.Context, id uint) (*models.JobPosting, error) {
	if job, ok := r.jobs[id]; ok {
		return job, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeJobPostingRepo) ListByOrganization(_ context.Context, organizationID uint) ([]*models.JobPosting, error) {
	var jobs []*models.JobPosting
	for _, job := range r.jobs {
		if job.OrganizationID == organizationID {
			jobs = append(jobs, job)
		}
	}
	return jobs, nil
}

func (r *fakeJobPostingRepo) List(_ context.Context) ([]*models.JobPosting, error) {
	jobs := make([]*models.JobPosting, 0, len(r.jobs))
	for _, job := range r.jobs {
		jobs = append(jobs, job)
	}
	return jobs, nil
}

// fakeApplicationRepo is an in-memory ApplicationRepository whose guarded
// update mirrors the SQL semantics of the real one
type fakeApplicationRepo struct {
	applications map[uint]*models.Application
	nextID       uint
}

func newFakeApplicationRepo() *fakeApplicationRepo {
	return &fakeApplicationRepo{applications: make(map[uint]*models.Application), nextID: 1}
}

func (r *fakeApplicationRepo) Create(_ context.Context, application *models.Application) error {
	application.ID = r.nextID
	r.nextID++
	r.applications[application.ID] = application
	return nil
}

func (r *fakeApplicationRepo) GetByID(_ context.Context, id uint) (*models.Application, error) {
	if application, ok := r.applications[id]; ok {
		copied := *application
		return &copied, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeApplicationRepo) ExistsByStudentAndJob(_ context.Context, studentID, jobPostingID uint) (bool, error) {
	for _, application := range r.applications {
		if application.StudentID == studentID && application.JobPostingID == jobPostingID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeApplicationRepo) ListByStudent(_ context.Context, studentID uint) ([]*models.Application, error) {
	var applications []*models.Application
	for _, application := range r.applications {
		if application.StudentID == studentID {
			applications = append(applications, application)
		}
	}
	return applications, nil
}

func (r *fakeApplicationRepo) List(_ context.Context) ([]*models.Application, error) {
	applications := make([]*models.Application, 0, len(r.applications))
	for _, application := range r.applications {
		applications = append(applications, application)
	}
	return applications, nil
}

func (r *fakeApplicationRepo) SetStatusIfNotFinal(_ context.Context, id uint, status string) (bool, error) {
	application, ok := r.applications[id]
	if !ok || models.IsFinalStatus(application.Status) {
		return false, nil
	}
	application.Status = status
	return true, nil
}

// workflowFixture wires an application service with one org-owned job and
// one student application in APPLIED state
type workflowFixture struct {
	service       *ApplicationService
	appRepo       *fakeApplicationRepo
	ownerUserID   uint
	jobID         uint
	applicationID uint
}

func newWorkflowFixture(t *testing.T) *workflowFixture {
	t.Helper()
	ctx := context.Background()

	studentRepo := newFakeStudentRepo()
	jobRepo := newFakeJobPostingRepo()
	appRepo := newFakeApplicationRepo()

	const studentUserID, ownerUserID = uint(10), uint(20)

	require.NoError(t, studentRepo.Create(ctx, &models.Student{
		UserID:     studentUserID,
		University: "State University",
		Degree:     "BSc Computer Science",
	}))

	job := &models.JobPosting{
		Title:          "Backend Engineer",
		Description:    "Build services",
		OrganizationID: 1,
		Organization:   &models.Organization{ID: 1, UserID: ownerUserID, CompanyName: "Acme Corp"},
	}
	require.NoError(t, jobRepo.Create(ctx, job))

	service := NewApplicationService(appRepo, jobRepo, studentRepo)

	applicationID, err := service.Apply(ctx, studentUserID, job.ID)
	require.NoError(t, err)

	return &workflowFixture{
		service:       service,
		appRepo:       appRepo,
		ownerUserID:   ownerUserID,
		jobID:         job.ID,
		applicationID: applicationID,
	}
}

func TestApplyWithoutProfile(t *testing.T) {
	service := NewApplicationService(newFakeApplicationRepo(), newFakeJobPostingRepo(), newFakeStudentRepo())

	_, err := service.Apply(context.Background(), 99, 1)
	assert.ErrorIs(t, err, ErrStudentProfileNotFound)
}

func TestApplyJobNotFound(t *testing.T) {
	ctx := context.Background()
	studentRepo := newFakeStudentRepo()
	require.NoError(t, studentRepo.Create(ctx, &models.Student{UserID: 10}))
	service := NewApplicationService(newFakeApplicationRepo(), newFakeJobPostingRepo(), studentRepo)

	_, err := service.Apply(ctx, 10, 404)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestApplyTwiceRejected(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.service.Apply(context.Background(), 10, f.jobID)
	assert.ErrorIs(t, err, ErrAlreadyApplied)
}

func TestUpdateStatusHappyPath(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	result, err := f.service.UpdateStatus(ctx, f.ownerUserID, models.RoleOrganization, f.jobID, f.applicationID, models.StatusShortlisted)
	require.NoError(t, err)
	assert.Equal(t, f.applicationID, result.ApplicationID)
	assert.Equal(t, models.StatusShortlisted, result.NewStatus)

	stored, err := f.appRepo.GetByID(ctx, f.applicationID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusShortlisted, stored.Status)
}

func TestUpdateStatusDirectSelect(t *testing.T) {
	// SELECTED straight from APPLIED, skipping the shortlist
	f := newWorkflowFixture(t)

	result, err := f.service.UpdateStatus(context.Background(), f.ownerUserID, models.RoleOrganization, f.jobID, f.applicationID, models.StatusSelected)
	require.NoError(t, err)
	assert.Equal(t, models.StatusSelected, result.NewStatus)
}

func TestUpdateStatusRequiresOrgRole(t *testing.T) {
	f := newWorkflowFixture(t)

	// Even the owning user is refused when acting under another role
	for _, role := range []string{models.RoleStudent, models.RoleAdmin, ""} {
		_, err := f.service.UpdateStatus(context.Background(), f.ownerUserID, role, f.jobID, f.applicationID, models.StatusShortlisted)
		assert.ErrorIs(t, err, ErrOrgRoleRequired, "role %q", role)
	}
}

func TestUpdateStatusRejectsNonOwner(t *testing.T) {
	f := newWorkflowFixture(t)

	// An ORGANIZATION user who does not own the job posting
	_, err := f.service.UpdateStatus(context.Background(), 999, models.RoleOrganization, f.jobID, f.applicationID, models.StatusShortlisted)
	assert.ErrorIs(t, err, ErrNotJobOwner)
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	f := newWorkflowFixture(t)

	for _, status := range []string{models.StatusApplied, "HIRED", "shortlisted", ""} {
		_, err := f.service.UpdateStatus(context.Background(), f.ownerUserID, models.RoleOrganization, f.jobID, f.applicationID, status)
		assert.ErrorIs(t, err, ErrInvalidStatus, "status %q", status)
	}
}

func TestUpdateStatusJobNotFound(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.service.UpdateStatus(context.Background(), f.ownerUserID, models.RoleOrganization, 404, f.applicationID, models.StatusShortlisted)
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestUpdateStatusApplicationNotFound(t *testing.T) {
	f := newWorkflowFixture(t)

	_, err := f.service.UpdateStatus(context.Background(), f.ownerUserID, models.RoleOrganization, f.jobID, 404, models.StatusShortlisted)
	assert.ErrorIs(t, err, ErrApplicationNotFound)
}

func TestUpdateStatusApplicationFromOtherJob(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	// A second job owned by the same organization, addressed with an
	// application that belongs to the first one
	otherJob := &models.JobPosting{
		Title:          "Frontend Engineer",
		Description:    "Build UIs",
		OrganizationID: 1,
		Organization:   &models.Organization{ID: 1, UserID: f.ownerUserID, CompanyName: "Acme Corp"},
	}
	jobRepo := f.service.jobPostingRepo.(*fakeJobPostingRepo)
	require.NoError(t, jobRepo.Create(ctx, otherJob))

	_, err := f.service.UpdateStatus(ctx, f.ownerUserID, models.RoleOrganization, otherJob.ID, f.applicationID, models.StatusShortlisted)
	assert.ErrorIs(t, err, ErrApplicationJobMismatch)
}

func TestUpdateStatusTerminalGuard(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	// APPLIED -> SHORTLISTED -> REJECTED
	_, err := f.service.UpdateStatus(ctx, f.ownerUserID, models.RoleOrganization, f.jobID, f.applicationID, models.StatusShortlisted)
	require.NoError(t, err)
	_, err = f.service.UpdateStatus(ctx, f.ownerUserID, models.RoleOrganization, f.jobID, f.applicationID, models.StatusRejected)
	require.NoError(t, err)

	// Any further transition is an error, not a silent no-op
	for _, status := range []string{models.StatusSelected, models.StatusShortlisted, models.StatusRejected} {
		_, err = f.service.UpdateStatus(ctx, f.ownerUserID, models.RoleOrganization, f.jobID, f.applicationID, status)
		assert.ErrorIs(t, err, ErrApplicationFinalized, "status %q", status)
	}

	stored, err := f.appRepo.GetByID(ctx, f.applicationID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusRejected, stored.Status)
}

func TestUpdateStatusLostRace(t *testing.T) {
	f := newWorkflowFixture(t)
	ctx := context.Background()

	// Finalize behind the service's back after it has read the row
	stored := f.appRepo.applications[f.applicationID]
	stored.Status = models.StatusSelected

	// The guarded write refuses the overwrite
	updated, err := f.appRepo.SetStatusIfNotFinal(ctx, f.applicationID, models.StatusShortlisted)
	require.NoError(t, err)
	assert.False(t, updated)
	assert.Equal(t, models.StatusSelected, stored.Status)
}

func TestListForStudent(t *testing.T) {
	f := newWorkflowFixture(t)

	responses, err := f.service.ListForStudent(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, responses, 1)
	assert.Equal(t, f.jobID, responses[0].JobPostingID)
	assert.Equal(t, models.StatusApplied, responses[0].Status)
}
