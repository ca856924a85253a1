package repositories

import (
	"errors"

	"gorm.io/gorm"

	"motorent-api/models"
)

type RentalPlanRepository struct {
	db *gorm.DB
}

func NewRentalPlanRepository(db *gorm.DB) *RentalPlanRepository {
	return &RentalPlanRepository{db: db}
}

func (r *RentalPlanRepository) GetByDays(days int) (*models.RentalPlan, error) {
	var plan models.RentalPlan
	err := r.db.First(&plan, "days = ?", days).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &plan, nil
}

func (r *RentalPlanRepository) ListAll() ([]models.RentalPlan, error) {
	var plans []models.RentalPlan
	err := r.db.Order("days").Find(&plans).Error
	return plans, err
}
