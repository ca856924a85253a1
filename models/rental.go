package models

import (
	"time"

	"motorent-api/utils"
)

const (
	RentalStatusActive   = "active"
	RentalStatusFinished = "finished"
)

// DateFormat is the wire format for rental dates. Rentals are booked in
// whole days; times of day never enter the pricing rules.
const DateFormat = "2006-01-02"

type Rental struct {
	ID              string     `json:"id" gorm:"primaryKey;size:191"`
	UserID          string     `json:"user_id" gorm:"not null;size:191"`
	MotorcycleID    string     `json:"motorcycle_id" gorm:"not null;size:191"`
	StartDate       time.Time  `json:"start_date" gorm:"type:date;not null"`
	ExpectedEndDate time.Time  `json:"expected_end_date" gorm:"type:date;not null"`
	EndDate         *time.Time `json:"end_date" gorm:"type:date"`
	Status          string     `json:"status" gorm:"not null;default:'active';size:20"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	User       User       `json:"-" gorm:"foreignKey:UserID"`
	Motorcycle Motorcycle `json:"-" gorm:"foreignKey:MotorcycleID"`
}

// PlanDays derives the duration bucket the rental was booked against. Dates
// may load at local midnight depending on the connection settings, so the
// span is counted in calendar days, never elapsed hours (a DST transition
// makes those differ).
func (r *Rental) PlanDays() int {
	return utils.DaysBetween(r.StartDate, r.ExpectedEndDate)
}

type RentalResponse struct {
	ID              string  `json:"id"`
	UserID          string  `json:"user_id"`
	MotorcycleID    string  `json:"motorcycle_id"`
	StartDate       string  `json:"start_date"`
	ExpectedEndDate string  `json:"expected_end_date"`
	EndDate         *string `json:"end_date"`
	Status          string  `json:"status"`
}

func (r *Rental) ToResponse() RentalResponse {
	resp := RentalResponse{
		ID:              r.ID,
		UserID:          r.UserID,
		MotorcycleID:    r.MotorcycleID,
		StartDate:       r.StartDate.Format(DateFormat),
		ExpectedEndDate: r.ExpectedEndDate.Format(DateFormat),
		Status:          r.Status,
	}
	if r.EndDate != nil {
		end := r.EndDate.Format(DateFormat)
		resp.EndDate = &end
	}
	return resp
}

// SettlementResult is the final charge computed exactly once when a rental
// is returned.
type SettlementResult struct {
	RentalID      string  `json:"rental_id"`
	TotalDays     int     `json:"total_days"`
	BaseAmount    float64 `json:"base_amount"`
	PenaltyAmount float64 `json:"penalty_amount"`
	ExtraAmount   float64 `json:"extra_amount"`
	TotalAmount   float64 `json:"total_amount"`
}
