package models

// RentalPlan is read-only reference data: a fixed duration bucket with its
// daily price. Seeded at deployment, never created through the API.
type RentalPlan struct {
	ID          string  `json:"id" gorm:"primaryKey;size:191"`
	Days        int     `json:"days" gorm:"uniqueIndex;not null"`
	PricePerDay float64 `json:"price_per_day" gorm:"not null;type:decimal(10,2)"`
}
