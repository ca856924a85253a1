package repositories

import (
	"errors"

	"gorm.io/gorm"

	"motorent-api/models"
)

type MotorcycleRepository struct {
	db *gorm.DB
}

func NewMotorcycleRepository(db *gorm.DB) *MotorcycleRepository {
	return &MotorcycleRepository{db: db}
}

func (r *MotorcycleRepository) Create(motorcycle *models.Motorcycle) error {
	return r.db.Create(motorcycle).Error
}

func (r *MotorcycleRepository) GetByID(id string) (*models.Motorcycle, error) {
	var motorcycle models.Motorcycle
	err := r.db.First(&motorcycle, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &motorcycle, nil
}

func (r *MotorcycleRepository) GetByVIN(vin string) (*models.Motorcycle, error) {
	var motorcycle models.Motorcycle
	err := r.db.First(&motorcycle, "vin = ?", vin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &motorcycle, nil
}

func (r *MotorcycleRepository) UpdateVIN(id, vin string) error {
	return r.db.Model(&models.Motorcycle{}).Where("id = ?", id).Update("vin", vin).Error
}

func (r *MotorcycleRepository) Delete(motorcycle *models.Motorcycle) error {
	return r.db.Delete(motorcycle).Error
}

func (r *MotorcycleRepository) ListAll() ([]models.Motorcycle, error) {
	var motorcycles []models.Motorcycle
	err := r.db.Find(&motorcycles).Error
	return motorcycles, err
}

// ListAvailable returns motorcycles with no active rental.
func (r *MotorcycleRepository) ListAvailable() ([]models.Motorcycle, error) {
	var motorcycles []models.Motorcycle
	sub := r.db.Model(&models.Rental{}).
		Select("motorcycle_id").
		Where("status = ?", models.RentalStatusActive)
	err := r.db.Where("id NOT IN (?)", sub).Find(&motorcycles).Error
	return motorcycles, err
}
