package services

import (
	"context"
	"strings"
	"testing"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"
	"github.com/yuneshbyte01/placement-system/internal/config"
	"github.com/yuneshbyte01/placement-system/internal/pkg/jwt"
	"github.com/yuneshbyte01/placement-system/internal/pkg/password"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// fakeUserRepo is an in-memory UserRepository for service tests
type fakeUserRepo struct {
	users  map[uint]*models.User
	nextID uint
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uint]*models.User), nextID: 1}
}

func (r *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	user.ID = r.nextID
	r.nextID++
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id uint) (*models.User, error) {
	if user, ok := r.users[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) GetActiveByEmail(_ context.Context, email string) (*models.User, error) {
	for _, user := range r.users {
		if strings.EqualFold(user.Email, email) && user.IsActive {
			return user, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepo) ExistsActiveByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetActiveByEmail(ctx, email)
	if err != nil {
		return false, nil
	}
	return true, nil
}

func (r *fakeUserRepo) Update(_ context.Context, user *models.User) error {
	r.users[user.ID] = user
	return nil
}

func (r *fakeUserRepo) List(_ context.Context) ([]*models.User, error) {
	users := make([]*models.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, user)
	}
	return users, nil
}

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{Secret: "test-secret", TTLHours: 24},
	}
}

func TestRegisterDefaultsToStudent(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, testConfig())

	user, err := service.Register(context.Background(), &RegisterInput{
		Name:     "Alice",
		Email:    "alice@university.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, models.RoleStudent, user.Role)
	assert.True(t, user.IsActive)
	// Only the hash is stored
	assert.NotEqual(t, "password123", user.Password)
	assert.True(t, password.Verify("password123", user.Password))
}

func TestRegisterNormalizesRole(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, testConfig())

	user, err := service.Register(context.Background(), &RegisterInput{
		Name:     "Acme Corp",
		Email:    "hr@acme.example",
		Password: "password123",
		Role:     "  organization ",
	})
	require.NoError(t, err)
	assert.Equal(t, models.RoleOrganization, user.Role)
}

func TestRegisterRejectsAdminRole(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, testConfig())

	user, err := service.Register(context.Background(), &RegisterInput{
		Name:     "Mallory",
		Email:    "mallory@university.edu",
		Password: "password123",
		Role:     "admin",
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrAdminRoleForbidden)

	// The rejected account must not exist
	_, err = repo.GetActiveByEmail(context.Background(), "mallory@university.edu")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, testConfig())

	user, err := service.Register(context.Background(), &RegisterInput{
		Name:     "Bob",
		Email:    "bob@university.edu",
		Password: "password123",
		Role:     "SUPERUSER",
	})
	assert.Nil(t, user)
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, testConfig())

	_, err := service.Register(context.Background(), &RegisterInput{
		Name:     "Alice",
		Email:    "alice@university.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	_, err = service.Register(context.Background(), &RegisterInput{
		Name:     "Alice Again",
		Email:    "alice@university.edu",
		Password: "password456",
	})
	assert.ErrorIs(t, err, ErrEmailInUse)
}

func TestRegisterRejectsWeakPassword(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, testConfig())

	_, err := service.Register(context.Background(), &RegisterInput{
		Name:     "Alice",
		Email:    "alice@university.edu",
		Password: "short",
	})
	assert.ErrorIs(t, err, ErrWeakPassword)
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	repo := newFakeUserRepo()
	cfg := testConfig()
	service := NewAuthService(repo, cfg)

	registered, err := service.Register(context.Background(), &RegisterInput{
		Name:     "Alice",
		Email:    "alice@university.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	result, err := service.Login(context.Background(), &LoginInput{
		Email:    "alice@university.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	assert.Equal(t, "alice@university.edu", result.Email)
	assert.Equal(t, models.RoleStudent, result.Role)

	claims, err := jwt.ValidateToken(result.Token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, claims.UserID)
	assert.Equal(t, "alice@university.edu", claims.Email)
	assert.Equal(t, models.RoleStudent, claims.Role)
}

func TestLoginFailuresAreIndistinguishable(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, testConfig())

	_, err := service.Register(context.Background(), &RegisterInput{
		Name:     "Alice",
		Email:    "alice@university.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	// Wrong password and unknown email surface as the same error
	_, wrongPassErr := service.Login(context.Background(), &LoginInput{
		Email:    "alice@university.edu",
		Password: "wrong-password",
	})
	_, noAccountErr := service.Login(context.Background(), &LoginInput{
		Email:    "nobody@university.edu",
		Password: "password123",
	})

	assert.ErrorIs(t, wrongPassErr, ErrInvalidCredentials)
	assert.ErrorIs(t, noAccountErr, ErrInvalidCredentials)
	assert.Equal(t, wrongPassErr.Error(), noAccountErr.Error())
}

func TestLoginDeactivatedAccount(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewAuthService(repo, testConfig())

	user, err := service.Register(context.Background(), &RegisterInput{
		Name:     "Alice",
		Email:    "alice@university.edu",
		Password: "password123",
	})
	require.NoError(t, err)

	user.IsActive = false
	require.NoError(t, repo.Update(context.Background(), user))

	// The active-scoped lookup does not find the account, so the failure
	// is indistinguishable from a wrong password
	_, err = service.Login(context.Background(), &LoginInput{
		Email:    "alice@university.edu",
		Password: "password123",
	})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
