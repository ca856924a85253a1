package messaging

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"motorent-api/models"
)

// Publisher pushes fleet events onto the Redis event bus.
type Publisher struct {
	rdb *redis.Client
}

func NewPublisher(rdb *redis.Client) *Publisher {
	return &Publisher{rdb: rdb}
}

func (p *Publisher) MotorcycleCreated(motorcycle *models.Motorcycle) error {
	payload, err := json.Marshal(NewMotorcycleCreatedEvent(motorcycle))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	return p.rdb.Publish(ctx, MotorcycleEventsChannel, payload).Err()
}
