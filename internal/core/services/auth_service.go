package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"
	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/repositories"
	"github.com/yuneshbyte01/placement-system/internal/config"
	"github.com/yuneshbyte01/placement-system/internal/pkg/jwt"
	"github.com/yuneshbyte01/placement-system/internal/pkg/password"

	"gorm.io/gorm"
)

// Auth errors
var (
	ErrEmailInUse         = errors.New("email already in use")
	ErrInvalidRole        = errors.New("invalid role")
	ErrAdminRoleForbidden = errors.New("cannot assign ADMIN role via registration")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user account is deactivated")
)

// AuthService handles registration and credential verification
type AuthService struct {
	userRepo repositories.UserRepository
	cfg      *config.Config
}

// NewAuthService creates a new auth service
func NewAuthService(userRepo repositories.UserRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		userRepo: userRepo,
		cfg:      cfg,
	}
}

// RegisterInput represents registration input
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// LoginInput represents login input
type LoginInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResponse represents a successful login
type AuthResponse struct {
	Token string `json:"token"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Register registers a new user
func (s *AuthService) Register(ctx context.Context, input *RegisterInput) (*models.User, error) {
	// 1. Reject if an active user already registered with this email
	exists, err := s.userRepo.ExistsActiveByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailInUse
	}

	// 2. Determine role (default to STUDENT); ADMIN is never self-service
	role := models.NormalizeRole(input.Role)
	if role == "" {
		role = models.RoleStudent
	}
	if role == models.RoleAdmin {
		return nil, ErrAdminRoleForbidden
	}
	if !models.ValidRole(role) {
		return nil, ErrInvalidRole
	}

	// 3. Hash password
	if !password.Validate(input.Password) {
		return nil, ErrWeakPassword
	}
	hashedPassword, err := password.Hash(input.Password)
	if err != nil {
		return nil, err
	}

	// 4. Create user
	user := &models.User{
		Username: input.Name,
		Email:    input.Email,
		Password: hashedPassword,
		Role:     role,
		IsActive: true,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Printf("✅ User registered: %s (%s)", user.Email, user.Role)
	return user, nil
}

// Login authenticates a user and issues a signed token.
// A missing account and a wrong password both surface as
// ErrInvalidCredentials so callers cannot enumerate emails.
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*AuthResponse, error) {
	// 1. Find an active user by email
	user, err := s.userRepo.GetActiveByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// 2. Verify password
	if !password.Verify(input.Password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	// 3. Defensive: the query is already scoped to active accounts
	if !user.IsActive {
		return nil, ErrUserInactive
	}

	// 4. Issue token
	token, err := jwt.GenerateToken(
		user.ID,
		user.Email,
		user.Role,
		user.Username,
		s.cfg.JWT.Secret,
		time.Duration(s.cfg.JWT.TTLHours)*time.Hour,
	)
	if err != nil {
		return nil, err
	}

	log.Printf("✅ User logged in: %s", user.Email)

	return &AuthResponse{
		Token: token,
		Email: user.Email,
		Role:  user.Role,
	}, nil
}

// GetUserByID gets a user by ID
func (s *AuthService) GetUserByID(ctx context.Context, userID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}
