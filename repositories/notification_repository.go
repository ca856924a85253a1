package repositories

import (
	"gorm.io/gorm"

	"motorent-api/models"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

func (r *NotificationRepository) Create(notification *models.MotorcycleNotification) error {
	return r.db.Create(notification).Error
}
