package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	amqp "github.com/rabbitmq/amqp091-go"

	"reviewhub/internal/logging"
	"reviewhub/internal/platform/rabbitmq"
	"reviewhub/internal/repository"
)

// RatingWorker consumes rating events and recomputes the affected item's
// average rating. Recomputing is idempotent, so redelivery is harmless.
type RatingWorker struct {
	conn      *amqp.Connection
	itemRepo  *repository.ItemRepository
	queueName string
	log       logging.Logger

	cancel  context.CancelFunc
	wg      sync.WaitGroup
	running atomic.Bool
}

func NewRatingWorker(conn *amqp.Connection, itemRepo *repository.ItemRepository, queueName string, log logging.Logger) *RatingWorker {
	return &RatingWorker{
		conn:      conn,
		itemRepo:  itemRepo,
		queueName: queueName,
		log:       log.With("component", "rating_worker", "queue", queueName),
	}
}

func (w *RatingWorker) Start(ctx context.Context) error {
	if w.cancel != nil {
		return nil
	}

	workerCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	ch, err := w.conn.Channel()
	if err != nil {
		cancel()
		return fmt.Errorf("open worker channel failed: %w", err)
	}

	if err := rabbitmq.DeclareQueue(ch, w.queueName); err != nil {
		_ = ch.Close()
		cancel()
		return err
	}

	if err := ch.Qos(16, 0, false); err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("set worker prefetch failed: %w", err)
	}

	deliveries, err := ch.Consume(
		w.queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		_ = ch.Close()
		cancel()
		return fmt.Errorf("consume queue failed: %w", err)
	}

	w.running.Store(true)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer ch.Close()
		w.consume(workerCtx, deliveries)
	}()

	w.log.Info(ctx, "rating worker started")
	return nil
}

// consume processes deliveries until ctx ends or the broker closes the
// channel. Running reports false afterwards.
func (w *RatingWorker) consume(ctx context.Context, deliveries <-chan amqp.Delivery) {
	defer w.running.Store(false)

	for {
		select {
		case <-ctx.Done():
			return
		case d, ok := <-deliveries:
			if !ok {
				w.log.Error(ctx, "delivery channel closed, rating averages will go stale until restart")
				return
			}
			if err := w.handle(ctx, d.Body); err != nil {
				w.log.Error(ctx, "rating event failed", "error", err)
				_ = d.Nack(false, false)
				continue
			}
			_ = d.Ack(false)
		}
	}
}

// Running reports whether the worker is still consuming.
func (w *RatingWorker) Running() bool {
	return w.running.Load()
}

func (w *RatingWorker) handle(ctx context.Context, body []byte) error {
	event, err := rabbitmq.DecodeRatingChanged(body)
	if err != nil {
		return err
	}
	if err := w.itemRepo.RecomputeAverageRating(ctx, event.ItemID); err != nil {
		return err
	}
	w.log.Debug(ctx, "average rating recomputed", "item_id", event.ItemID)
	return nil
}

func (w *RatingWorker) Close() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}
