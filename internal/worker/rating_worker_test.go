package worker

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"reviewhub/internal/logging"
	"reviewhub/internal/model"
	"reviewhub/internal/platform/rabbitmq"
	"reviewhub/internal/platform/sqlite"
	"reviewhub/internal/repository"
)

func TestRatingWorker_HandleRecomputesAverage(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "worker.db"))
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	users := repository.NewUserRepository(db)
	items := repository.NewItemRepository(db)
	reviews := repository.NewReviewRepository(db)

	item := &model.Item{ID: uuid.NewString(), Name: "Widget"}
	require.NoError(t, items.Create(ctx, item))
	for i, rating := range []int{5, 4, 4} {
		u := &model.User{ID: uuid.NewString(), Username: "user" + string(rune('a'+i)), PasswordHash: "x"}
		require.NoError(t, users.Create(ctx, u))
		require.NoError(t, reviews.Create(ctx, &model.Review{
			ID: uuid.NewString(), UserID: u.ID, ItemID: item.ID, Rating: rating, ReviewText: "ok",
		}))
	}

	w := NewRatingWorker(nil, items, "ratings", logging.Discard())

	body, err := rabbitmq.EncodeRatingChanged(item.ID, time.Now())
	require.NoError(t, err)
	require.NoError(t, w.handle(ctx, body))

	got, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.3, got.AverageRating, 0.001)

	// redelivery of the same event is harmless
	require.NoError(t, w.handle(ctx, body))
	got, err = items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.InDelta(t, 4.3, got.AverageRating, 0.001)
}

func TestRatingWorker_HandleRejectsBadPayload(t *testing.T) {
	w := NewRatingWorker(nil, nil, "ratings", logging.Discard())

	assert.Error(t, w.handle(context.Background(), []byte("{")))
	assert.Error(t, w.handle(context.Background(), []byte(`{"item_id":""}`)))
}

func TestRatingWorker_CloseWithoutStart(t *testing.T) {
	w := NewRatingWorker(nil, nil, "ratings", logging.Discard())
	assert.False(t, w.Running())
	w.Close()
}

func TestRatingWorker_ConsumeStopsWhenBrokerClosesChannel(t *testing.T) {
	ctx := context.Background()
	db, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "consume.db"))
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))

	users := repository.NewUserRepository(db)
	items := repository.NewItemRepository(db)
	reviews := repository.NewReviewRepository(db)

	item := &model.Item{ID: uuid.NewString(), Name: "Gadget"}
	require.NoError(t, items.Create(ctx, item))
	u := &model.User{ID: uuid.NewString(), Username: "lucy", PasswordHash: "x"}
	require.NoError(t, users.Create(ctx, u))
	require.NoError(t, reviews.Create(ctx, &model.Review{
		ID: uuid.NewString(), UserID: u.ID, ItemID: item.ID, Rating: 2, ReviewText: "meh",
	}))

	w := NewRatingWorker(nil, items, "ratings", logging.Discard())
	w.running.Store(true)
	require.True(t, w.Running())

	body, err := rabbitmq.EncodeRatingChanged(item.ID, time.Now())
	require.NoError(t, err)

	deliveries := make(chan amqp.Delivery, 2)
	deliveries <- amqp.Delivery{Body: body}
	deliveries <- amqp.Delivery{Body: []byte("garbage")}
	close(deliveries)

	w.consume(ctx, deliveries)

	assert.False(t, w.Running())
	got, err := items.GetByID(ctx, item.ID)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, got.AverageRating, 0.001)
}

func TestRatingWorker_ConsumeStopsOnCancel(t *testing.T) {
	w := NewRatingWorker(nil, nil, "ratings", logging.Discard())
	w.running.Store(true)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	w.consume(ctx, make(chan amqp.Delivery))

	assert.False(t, w.Running())
}
