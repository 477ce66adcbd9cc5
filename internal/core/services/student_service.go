package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"
	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/repositories"
	"github.com/yuneshbyte01/placement-system/internal/config"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Student errors
var (
	ErrProfileExists   = errors.New("profile already exists")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidResume   = errors.New("invalid file: only PDF under 5MB allowed")
)

const pdfContentType = "application/pdf"

// StudentService handles student profiles and resume uploads
type StudentService struct {
	studentRepo repositories.StudentRepository
	cfg         *config.Config
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo repositories.StudentRepository, cfg *config.Config) *StudentService {
	return &StudentService{
		studentRepo: studentRepo,
		cfg:         cfg,
	}
}

// StudentProfileInput represents profile create/update input
type StudentProfileInput struct {
	University     string `json:"university"`
	Degree         string `json:"degree"`
	GraduationYear int    `json:"graduation_year"`
	Skills         string `json:"skills"`
}

// CreateProfile creates the student profile for a user
func (s *StudentService) CreateProfile(ctx context.Context, userID uint, input *StudentProfileInput) error {
	exists, err := s.studentRepo.ExistsByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if exists {
		return ErrProfileExists
	}

	student := &models.Student{
		UserID:         userID,
		University:     input.University,
		Degree:         input.Degree,
		GraduationYear: input.GraduationYear,
		Skills:         input.Skills,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return err
	}

	log.Printf("✅ Student profile created for user %d", userID)
	return nil
}

// GetProfile returns the student profile for a user
func (s *StudentService) GetProfile(ctx context.Context, userID uint) (*models.StudentResponse, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return student.ToResponse(), nil
}

// UpdateProfile updates the student profile for a user
func (s *StudentService) UpdateProfile(ctx context.Context, userID uint, input *StudentProfileInput) error {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProfileNotFound
		}
		return err
	}

	student.University = input.University
	student.Degree = input.Degree
	student.GraduationYear = input.GraduationYear
	student.Skills = input.Skills

	return s.studentRepo.Update(ctx, student)
}

// UploadResume validates and stores a PDF resume, recording its path on the profile
func (s *StudentService) UploadResume(ctx context.Context, userID uint, email string, file *multipart.FileHeader) (string, error) {
	student, err := s.studentRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrProfileNotFound
		}
		return "", err
	}

	if file == nil || file.Size == 0 || file.Size > s.cfg.Upload.MaxFileSize {
		return "", ErrInvalidResume
	}
	if !strings.EqualFold(file.Header.Get("Content-Type"), pdfContentType) {
		return "", ErrInvalidResume
	}

	if err := os.MkdirAll(s.cfg.Upload.Dir, 0o755); err != nil {
		return "", err
	}

	fileName := fmt.Sprintf("%s_%s.pdf", sanitizeFileName(email), uuid.New().String())
	path := filepath.Join(s.cfg.Upload.Dir, fileName)

	if err := saveMultipartFile(file, path); err != nil {
		return "", err
	}

	student.ResumePath = path
	if err := s.studentRepo.Update(ctx, student); err != nil {
		return "", err
	}

	log.Printf("✅ Resume uploaded for user %d: %s", userID, path)
	return path, nil
}

// saveMultipartFile copies an uploaded file to disk
func saveMultipartFile(file *multipart.FileHeader, path string) error {
	src, err := file.Open()
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return err
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	return err
}

// sanitizeFileName keeps only characters safe for a file name
func sanitizeFileName(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}
