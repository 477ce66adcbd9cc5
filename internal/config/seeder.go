package config

import (
	"fmt"
	"log"

	"github.com/yuneshbyte01/placement-system/internal/adapters/persistence/models"
	"github.com/yuneshbyte01/placement-system/internal/pkg/password"

	"gorm.io/gorm"
)

// SeedAdminUser provisions the initial admin account from configuration.
// Registration refuses the ADMIN role, so this is the only path that
// creates one. Does nothing when ADMIN_EMAIL is unset or the account
// already exists.
func SeedAdminUser(db *gorm.DB, cfg *Config) error {
	if cfg.Admin.Email == "" {
		log.Println("ℹ️ ADMIN_EMAIL not set, skipping admin seeding")
		return nil
	}
	if cfg.Admin.Password == "" {
		return fmt.Errorf("ADMIN_EMAIL is set but ADMIN_PASSWORD is empty")
	}

	var count int64
	if err := db.Model(&models.User{}).
		Where("LOWER(email) = LOWER(?)", cfg.Admin.Email).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashed, err := password.Hash(cfg.Admin.Password)
	if err != nil {
		return err
	}

	admin := &models.User{
		Username: cfg.Admin.Name,
		Email:    cfg.Admin.Email,
		Password: hashed,
		Role:     models.RoleAdmin,
		IsActive: true,
	}

	if err := db.Create(admin).Error; err != nil {
		return err
	}

	log.Printf("✅ Admin account seeded: %s", admin.Email)
	return nil
}
