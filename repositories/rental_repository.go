package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"motorent-api/models"
)

type RentalRepository struct {
	db *gorm.DB
}

func NewRentalRepository(db *gorm.DB) *RentalRepository {
	return &RentalRepository{db: db}
}

// Create inserts a new rental. The unique index on the generated
// active_motorcycle_id column is the hard guard against two concurrent
// bookings for the same motorcycle; callers must map gorm.ErrDuplicatedKey
// to the already-rented conflict.
func (r *RentalRepository) Create(rental *models.Rental) error {
	return r.db.Create(rental).Error
}

func (r *RentalRepository) GetByID(id string) (*models.Rental, error) {
	var rental models.Rental
	err := r.db.First(&rental, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rental, nil
}

// HasActiveRental reports whether the motorcycle is currently rented out.
// This is an optimistic pre-check only; the insert-time constraint is what
// actually serializes concurrent bookings.
func (r *RentalRepository) HasActiveRental(motorcycleID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Rental{}).
		Where("motorcycle_id = ? AND status = ?", motorcycleID, models.RentalStatusActive).
		Count(&count).Error
	return count > 0, err
}

// HasAnyRental reports whether the motorcycle has ever had a rental record,
// active or finished. Gates motorcycle deletion.
func (r *RentalRepository) HasAnyRental(motorcycleID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Rental{}).
		Where("motorcycle_id = ?", motorcycleID).
		Count(&count).Error
	return count > 0, err
}

// Finish performs the terminal active -> finished transition as a
// compare-and-swap: the WHERE status clause guarantees that of two
// concurrent returns only one sees rows affected.
func (r *RentalRepository) Finish(id string, endDate time.Time) (bool, error) {
	result := r.db.Model(&models.Rental{}).
		Where("id = ? AND status = ?", id, models.RentalStatusActive).
		Updates(map[string]interface{}{
			"end_date":   endDate,
			"status":     models.RentalStatusFinished,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *RentalRepository) ListByUser(userID string) ([]models.Rental, error) {
	var rentals []models.Rental
	err := r.db.Where("user_id = ?", userID).Find(&rentals).Error
	return rentals, err
}

func (r *RentalRepository) ListByMotorcycle(motorcycleID string) ([]models.Rental, error) {
	var rentals []models.Rental
	err := r.db.Where("motorcycle_id = ?", motorcycleID).Find(&rentals).Error
	return rentals, err
}

// ListOverdue returns active rentals whose expected end date has passed.
func (r *RentalRepository) ListOverdue(asOf time.Time) ([]models.Rental, error) {
	var rentals []models.Rental
	err := r.db.Where("status = ? AND expected_end_date < ?", models.RentalStatusActive, asOf).
		Find(&rentals).Error
	return rentals, err
}

func (r *RentalRepository) ListAll() ([]models.Rental, error) {
	var rentals []models.Rental
	err := r.db.Find(&rentals).Error
	return rentals, err
}
