package rabbitmq

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// RatingChangedEvent is published whenever a review for ItemID is created,
// updated or deleted.
type RatingChangedEvent struct {
	ItemID     string    `json:"item_id"`
	OccurredAt time.Time `json:"occurred_at"`
}

type RatingPublisher struct {
	conn      *amqp.Connection
	queueName string
}

func NewRatingPublisher(conn *amqp.Connection, queueName string) *RatingPublisher {
	return &RatingPublisher{
		conn:      conn,
		queueName: queueName,
	}
}

func (p *RatingPublisher) PublishRatingChanged(ctx context.Context, itemID string) error {
	payload, err := EncodeRatingChanged(itemID, time.Now().UTC())
	if err != nil {
		return err
	}

	ch, err := p.conn.Channel()
	if err != nil {
		return fmt.Errorf("open rabbitmq channel failed: %w", err)
	}
	defer ch.Close()

	if err := DeclareQueue(ch, p.queueName); err != nil {
		return err
	}

	if err := ch.PublishWithContext(
		ctx,
		"",
		p.queueName,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         payload,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	); err != nil {
		return fmt.Errorf("publish rating event failed: %w", err)
	}
	return nil
}

func EncodeRatingChanged(itemID string, at time.Time) ([]byte, error) {
	if itemID == "" {
		return nil, fmt.Errorf("rating event needs an item id")
	}
	payload, err := json.Marshal(RatingChangedEvent{ItemID: itemID, OccurredAt: at})
	if err != nil {
		return nil, fmt.Errorf("marshal rating event failed: %w", err)
	}
	return payload, nil
}

func DecodeRatingChanged(body []byte) (RatingChangedEvent, error) {
	var event RatingChangedEvent
	if err := json.Unmarshal(body, &event); err != nil {
		return event, fmt.Errorf("decode rating event failed: %w", err)
	}
	if event.ItemID == "" {
		return event, fmt.Errorf("rating event has no item_id")
	}
	return event, nil
}
