package messaging

import (
	"time"

	"motorent-api/models"
)

// MotorcycleEventsChannel carries fleet lifecycle events.
const MotorcycleEventsChannel = "motorcycle.events"

const EventMotorcycleCreated = "MOTORCYCLE_CREATED"

type MotorcycleCreatedEvent struct {
	Event        string `json:"event"`
	MotorcycleID string `json:"motorcycle_id"`
	Model        string `json:"model"`
	VIN          string `json:"vin"`
	Year         int    `json:"year"`
	CreatedAt    string `json:"created_at"`
}

func NewMotorcycleCreatedEvent(motorcycle *models.Motorcycle) MotorcycleCreatedEvent {
	return MotorcycleCreatedEvent{
		Event:        EventMotorcycleCreated,
		MotorcycleID: motorcycle.ID,
		Model:        motorcycle.Model,
		VIN:          motorcycle.VIN,
		Year:         motorcycle.Year,
		CreatedAt:    time.Now().UTC().Format(time.RFC3339),
	}
}
