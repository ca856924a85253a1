package models

import (
	"time"
)

type Motorcycle struct {
	ID        string    `json:"id" gorm:"primaryKey;size:191"`
	VIN       string    `json:"vin" gorm:"uniqueIndex;not null;size:20"`
	Model     string    `json:"model" gorm:"not null;size:100"`
	Year      int       `json:"year" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Rentals []Rental `json:"-" gorm:"foreignKey:MotorcycleID"`
}

// MotorcycleNotification is written by the event consumer for machines the
// fleet team wants flagged (currently model year 2024).
type MotorcycleNotification struct {
	ID           string    `json:"id" gorm:"primaryKey;size:191"`
	MotorcycleID string    `json:"motorcycle_id" gorm:"not null;size:191"`
	Model        string    `json:"model" gorm:"not null;size:100"`
	Year         int       `json:"year" gorm:"not null"`
	VIN          string    `json:"vin" gorm:"not null;size:20"`
	ReceivedAt   time.Time `json:"received_at"`
}
