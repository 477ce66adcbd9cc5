package repositories

import (
	"context"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"

	"gorm.io/gorm"
)

// organizationRepository implements OrganizationRepository interface
type organizationRepository struct {
	db *gorm.DB
}

// NewOrganizationRepository creates a new organization repository
func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db: db}
}

// Create creates a new organization profile
func (r *organizationRepository) Create(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Create(org).Error
}

// GetByID gets an organization profile by ID
func (r *organizationRepository) GetByID(ctx context.Context, id uint) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// GetByUserID gets an organization profile by owning user ID
func (r *organizationRepository) GetByUserID(ctx context.Context, userID uint) (*models.Organization, error) {
	var org models.Organization
	err := r.db.WithContext(ctx).Preload("User").Where("user_id = ?", userID).First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

// ExistsByUserID checks if an organization profile exists for the user
func (r *organizationRepository) ExistsByUserID(ctx context.Context, userID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Organization{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

// Update updates an organization profile
func (r *organizationRepository) Update(ctx context.Context, org *models.Organization) error {
	return r.db.WithContext(ctx).Save(org).Error
}

// List lists all organization profiles
func (r *organizationRepository) List(ctx context.Context) ([]*models.Organization, error) {
	var orgs []*models.Organization
	err := r.db.WithContext(ctx).Preload("User").Order("id").Find(&orgs).Error
	return orgs, err
}

// ListPending lists organization profiles awaiting approval
func (r *organizationRepository) ListPending(ctx context.Context) ([]*models.Organization, error) {
	var orgs []*models.Organization
	err := r.db.WithContext(ctx).Preload("User").Where("approved = ?", false).Order("id").Find(&orgs).Error
	return orgs, err
}
