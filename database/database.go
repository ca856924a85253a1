package database

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"motorent-api/config"
	"motorent-api/models"
)

func Initialize(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(mysql.Open(databaseURL), &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Info),
		DisableForeignKeyConstraintWhenMigrating: true,
		// Unique-key violations must surface as gorm.ErrDuplicatedKey so the
		// booking path can map them to a rental conflict.
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Motorcycle{},
		&models.RentalPlan{},
		&models.Rental{},
		&models.MotorcycleNotification{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	if err := addDatabaseConstraints(db); err != nil {
		return fmt.Errorf("failed to add database constraints: %w", err)
	}

	return nil
}

func addDatabaseConstraints(db *gorm.DB) error {
	// At most one active rental per motorcycle. MySQL has no partial unique
	// indexes, so the constraint rides on a generated column that is NULL
	// for finished rentals (NULLs never collide in a unique index). The
	// availability check in the service is only an optimistic pre-check;
	// this index is what decides concurrent bookings.
	if err := db.Exec("ALTER TABLE rentals ADD COLUMN active_motorcycle_id VARCHAR(191) GENERATED ALWAYS AS (IF(status = 'active', motorcycle_id, NULL)) STORED").Error; err != nil {
		fmt.Printf("Warning: Could not add active_motorcycle_id column (may already exist): %v\n", err)
	}

	if err := db.Exec("CREATE UNIQUE INDEX uk_rentals_active_motorcycle ON rentals(active_motorcycle_id)").Error; err != nil {
		fmt.Printf("Warning: Could not add unique index for active rentals (may already exist): %v\n", err)
	}

	// Rental listings are served per user and per motorcycle.
	if err := db.Exec("CREATE INDEX idx_rentals_user ON rentals(user_id)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for rentals by user: %v\n", err)
	}

	if err := db.Exec("CREATE INDEX idx_rentals_motorcycle_status ON rentals(motorcycle_id, status)").Error; err != nil {
		fmt.Printf("Warning: Could not create index for rentals by motorcycle: %v\n", err)
	}

	return nil
}

// rentalPlans is the fixed catalog seeded at deployment. Pricing changes go
// through a new deployment, not an API.
var rentalPlans = []models.RentalPlan{
	{Days: 7, PricePerDay: 30.00},
	{Days: 15, PricePerDay: 28.00},
	{Days: 30, PricePerDay: 22.00},
	{Days: 45, PricePerDay: 20.00},
	{Days: 50, PricePerDay: 18.00},
}

// SeedData loads the rental plan catalog and the default admin account.
func SeedData(db *gorm.DB, cfg *config.Config) error {
	for _, plan := range rentalPlans {
		var existing models.RentalPlan
		err := db.Where("days = ?", plan.Days).First(&existing).Error
		if err == nil {
			continue
		}

		plan.ID = uuid.New().String()
		if err := db.Create(&plan).Error; err != nil {
			return fmt.Errorf("failed to seed rental plan for %d days: %w", plan.Days, err)
		}
	}

	if err := seedDefaultAdmin(db, cfg); err != nil {
		return err
	}

	return nil
}

func seedDefaultAdmin(db *gorm.DB, cfg *config.Config) error {
	var count int64
	db.Model(&models.User{}).Where("role = ?", models.RoleAdmin).Count(&count)
	if count > 0 {
		return nil
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := models.User{
		ID:       uuid.New().String(),
		Name:     "Administrator",
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Role:     models.RoleAdmin,
	}

	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed default admin: %w", err)
	}

	log.Printf("Default admin account created (%s)", cfg.AdminEmail)
	return nil
}
