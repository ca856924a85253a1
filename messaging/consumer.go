package messaging

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"motorent-api/models"
	"motorent-api/repositories"
)

// Consumer subscribes to the fleet event bus and records notifications for
// machines the fleet team tracks. Runs for the lifetime of the process.
type Consumer struct {
	rdb           *redis.Client
	notifications *repositories.NotificationRepository
}

func NewConsumer(rdb *redis.Client, notifications *repositories.NotificationRepository) *Consumer {
	return &Consumer{rdb: rdb, notifications: notifications}
}

// Start launches the subscription loop in its own goroutine.
func (c *Consumer) Start(ctx context.Context) {
	pubsub := c.rdb.Subscribe(ctx, MotorcycleEventsChannel)

	go func() {
		defer pubsub.Close()

		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-pubsub.Channel():
				if !ok {
					return
				}
				c.handleMessage(msg.Payload)
			}
		}
	}()
}

func (c *Consumer) handleMessage(payload string) {
	var event MotorcycleCreatedEvent
	if err := json.Unmarshal([]byte(payload), &event); err != nil {
		log.Printf("Failed to decode motorcycle event: %v", err)
		return
	}

	if event.Event != EventMotorcycleCreated {
		return
	}

	// The fleet team currently tracks only the 2024 model year.
	if event.Year != 2024 {
		return
	}

	notification := &models.MotorcycleNotification{
		ID:           uuid.New().String(),
		MotorcycleID: event.MotorcycleID,
		Model:        event.Model,
		Year:         event.Year,
		VIN:          event.VIN,
		ReceivedAt:   time.Now().UTC(),
	}

	if err := c.notifications.Create(notification); err != nil {
		log.Printf("Failed to persist motorcycle notification: %v", err)
		return
	}

	log.Printf("Motorcycle 2024 detected | id=%s model=%s", event.MotorcycleID, event.Model)
}
