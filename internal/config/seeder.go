package config

import (
	"log"
	"time"

	"chamahub/internal/adapters/persistence/models"
	"chamahub/internal/pkg/password"

	"gorm.io/gorm"
)

// Seeder handles database seeding
type Seeder struct {
	db  *gorm.DB
	cfg *Config
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB, cfg *Config) *Seeder {
	return &Seeder{db: db, cfg: cfg}
}

// Run executes all seeders
func (s *Seeder) Run() error {
	log.Println("🌱 Running database seeders...")

	if err := s.seedAdminUser(); err != nil {
		log.Printf("⚠️ Admin seeder skipped: %v", err)
	}

	log.Println("✅ Database seeding completed")
	return nil
}

// seedAdminUser seeds the initial admin account. Skipped once any
// admin role assignment exists.
func (s *Seeder) seedAdminUser() error {
	var count int64
	s.db.Model(&models.UserRole{}).Where("role = ?", "admin").Count(&count)
	if count > 0 {
		return nil
	}

	hashedPassword, err := password.Hash(s.cfg.Seed.AdminPassword)
	if err != nil {
		return err
	}

	admin := &models.User{
		Email:    s.cfg.Seed.AdminEmail,
		Password: hashedPassword,
		IsActive: true,
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(admin).Error; err != nil {
			return err
		}
		profile := &models.Profile{
			ID:         admin.ID,
			FullName:   s.cfg.Seed.AdminName,
			Status:     "active",
			DateJoined: time.Now(),
		}
		if err := tx.Create(profile).Error; err != nil {
			return err
		}
		roles := []*models.UserRole{
			{UserID: admin.ID, Role: "admin"},
			{UserID: admin.ID, Role: "member"},
		}
		for _, role := range roles {
			if err := tx.Create(role).Error; err != nil {
				return err
			}
		}

		log.Printf("✅ Admin user created: %s", admin.Email)
		return nil
	})
}
