package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// ============================================================
// Roles & Application Statuses
// ============================================================

// User roles (closed set, stored as strings)
const (
	RoleStudent      = "STUDENT"
	RoleOrganization = "ORGANIZATION"
	RoleAdmin        = "ADMIN"
)

// ValidRole reports whether s names a known role
func ValidRole(s string) bool {
	switch s {
	case RoleStudent, RoleOrganization, RoleAdmin:
		return true
	}
	return false
}

// NormalizeRole uppercases and trims a role string from transit
func NormalizeRole(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}

// Application statuses
const (
	StatusApplied     = "APPLIED"
	StatusShortlisted = "SHORTLISTED"
	StatusSelected    = "SELECTED"
	StatusRejected    = "REJECTED"
)

// IsFinalStatus reports whether a status is terminal (no further transitions)
func IsFinalStatus(status string) bool {
	return status == StatusSelected || status == StatusRejected
}

// ============================================================
// Auth & User Tables
// ============================================================

// User represents users table
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:100;not null" json:"username"`
	Email     string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	Password  string    `gorm:"size:255;not null" json:"-"`
	Role      string    `gorm:"size:20;not null;default:'STUDENT'" json:"role"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserResponse DTO
type UserResponse struct {
	ID        uint      `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

func (u *User) ToResponse() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}

// ============================================================
// Profile Tables
// ============================================================

// Student represents students table (profile linked 1:1 to a user)
type Student struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	University     string    `gorm:"size:150;not null" json:"university"`
	Degree         string    `gorm:"size:100;not null" json:"degree"`
	GraduationYear int       `gorm:"not null" json:"graduation_year"`
	Skills         string    `gorm:"size:500" json:"skills"`
	ResumePath     string    `gorm:"size:255" json:"resume_path"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Student) TableName() string {
	return "students"
}

// StudentResponse DTO
type StudentResponse struct {
	University     string `json:"university"`
	Degree         string `json:"degree"`
	GraduationYear int    `json:"graduation_year"`
	Skills         string `json:"skills"`
	ResumePath     string `json:"resume_path,omitempty"`
	Email          string `json:"email,omitempty"`
}

func (s *Student) ToResponse() *StudentResponse {
	resp := &StudentResponse{
		University:     s.University,
		Degree:         s.Degree,
		GraduationYear: s.GraduationYear,
		Skills:         s.Skills,
		ResumePath:     s.ResumePath,
	}
	if s.User != nil {
		resp.Email = s.User.Email
	}
	return resp
}

// Organization represents organizations table (profile linked 1:1 to a user)
type Organization struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	CompanyName string    `gorm:"size:150;not null" json:"company_name"`
	Industry    string    `gorm:"size:100" json:"industry"`
	Location    string    `gorm:"size:150" json:"location"`
	Description string    `gorm:"size:500" json:"description"`
	Approved    bool      `gorm:"default:false" json:"approved"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}

func (Organization) TableName() string {
	return "organizations"
}

// OrganizationResponse DTO
type OrganizationResponse struct {
	CompanyName string `json:"company_name"`
	Industry    string `json:"industry"`
	Location    string `json:"location"`
	Description string `json:"description"`
	Approved    bool   `json:"approved"`
	Email       string `json:"email,omitempty"`
}

func (o *Organization) ToResponse() *OrganizationResponse {
	resp := &OrganizationResponse{
		CompanyName: o.CompanyName,
		Industry:    o.Industry,
		Location:    o.Location,
		Description: o.Description,
		Approved:    o.Approved,
	}
	if o.User != nil {
		resp.Email = o.User.Email
	}
	return resp
}

// ============================================================
// Job Posting & Application Tables
// ============================================================

// JobPosting represents job_postings table
type JobPosting struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	Title               string    `gorm:"size:200;not null" json:"title"`
	Description         string    `gorm:"type:text;not null" json:"description"`
	SkillsRequired      string    `gorm:"size:500" json:"skills_required"`
	EligibilityCriteria string    `gorm:"size:500" json:"eligibility_criteria"`
	OrganizationID      uint      `gorm:"not null;index" json:"organization_id"`
	CreatedAt           time.Time `gorm:"autoCreateTime" json:"created_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}

func (JobPosting) TableName() string {
	return "job_postings"
}

// JobPostingResponse DTO
type JobPostingResponse struct {
	ID                  uint      `json:"id"`
	Title               string    `json:"title"`
	Description         string    `json:"description"`
	SkillsRequired      string    `json:"skills_required"`
	EligibilityCriteria string    `json:"eligibility_criteria"`
	CompanyName         string    `json:"company_name,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
}

func (j *JobPosting) ToResponse() *JobPostingResponse {
	resp := &JobPostingResponse{
		ID:                  j.ID,
		Title:               j.Title,
		Description:         j.Description,
		SkillsRequired:      j.SkillsRequired,
		EligibilityCriteria: j.EligibilityCriteria,
		CreatedAt:           j.CreatedAt,
	}
	if j.Organization != nil {
		resp.CompanyName = j.Organization.CompanyName
	}
	return resp
}

// Application represents applications table.
// A student applies to a job posting at most once.
type Application struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	StudentID    uint      `gorm:"not null;uniqueIndex:idx_student_job" json:"student_id"`
	JobPostingID uint      `gorm:"not null;uniqueIndex:idx_student_job;index" json:"job_posting_id"`
	Status       string    `gorm:"size:20;not null;default:'APPLIED'" json:"status"`
	AppliedAt    time.Time `gorm:"autoCreateTime" json:"applied_at"`

	Student    *Student    `gorm:"foreignKey:StudentID" json:"-"`
	JobPosting *JobPosting `gorm:"foreignKey:JobPostingID" json:"-"`
}

func (Application) TableName() string {
	return "applications"
}

// ApplicationResponse DTO for a student's own application listing
type ApplicationResponse struct {
	JobPostingID uint      `json:"job_posting_id"`
	JobTitle     string    `json:"job_title"`
	CompanyName  string    `json:"company_name"`
	Status       string    `json:"status"`
	AppliedAt    time.Time `json:"applied_at"`
}

func (a *Application) ToResponse() *ApplicationResponse {
	resp := &ApplicationResponse{
		JobPostingID: a.JobPostingID,
		Status:       a.Status,
		AppliedAt:    a.AppliedAt,
	}
	if a.JobPosting != nil {
		resp.JobTitle = a.JobPosting.Title
		if a.JobPosting.Organization != nil {
			resp.CompanyName = a.JobPosting.Organization.CompanyName
		}
	}
	return resp
}

// AdminApplicationResponse DTO for the admin application listing
type AdminApplicationResponse struct {
	ID           uint   `json:"id"`
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`
	JobTitle     string `json:"job_title"`
	CompanyName  string `json:"company_name"`
	Status       string `json:"status"`
}

func (a *Application) ToAdminResponse() *AdminApplicationResponse {
	resp := &AdminApplicationResponse{
		ID:     a.ID,
		Status: a.Status,
	}
	if a.Student != nil && a.Student.User != nil {
		resp.StudentName = a.Student.User.Username
		resp.StudentEmail = a.Student.User.Email
	}
	if a.JobPosting != nil {
		resp.JobTitle = a.JobPosting.Title
		if a.JobPosting.Organization != nil {
			resp.CompanyName = a.JobPosting.Organization.CompanyName
		}
	}
	return resp
}

// ============================================================
// Auto Migration
// ============================================================

// AutoMigrate creates or updates all tables
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&User{},
		&Student{},
		&Organization{},
		&JobPosting{},
		&Application{},
	)
}
