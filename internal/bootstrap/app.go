package bootstrap

import (
	"context"
	"fmt"
	"os"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"reviewhub/internal/config"
	"reviewhub/internal/logging"
	"reviewhub/internal/platform/database"
	rabbitmqClient "reviewhub/internal/platform/rabbitmq"
	redisClient "reviewhub/internal/platform/redis"
	"reviewhub/internal/repository"
	"reviewhub/internal/worker"
)

type App struct {
	Config       *config.Config
	Logger       logging.Logger
	DB           *gorm.DB
	Redis        *redis.Client
	MQConn       *amqp.Connection
	RatingWorker *worker.RatingWorker
	Services     *Services

	StartedAt time.Time
}

func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config failed: %w", err)
	}

	logger := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format).
		With("app", cfg.App.Name, "env", cfg.App.Env)
	a := &App{Config: cfg, Logger: logger}

	if err := a.connect(ctx); err != nil {
		_ = a.Close()
		return nil, err
	}

	a.StartedAt = time.Now()
	return a, nil
}

func (a *App) connect(ctx context.Context) error {
	cfg := a.Config

	db, err := database.Open(ctx, cfg, a.Logger.With("component", "gorm"))
	if err != nil {
		return err
	}
	a.DB = db
	if err := repository.AutoMigrate(db); err != nil {
		return err
	}
	a.Logger.Info(ctx, "database ready", "driver", cfg.Database.Driver)

	a.Redis, err = redisClient.New(ctx, cfg.Redis)
	if err != nil {
		return err
	}

	a.MQConn, err = rabbitmqClient.New(ctx, cfg.RabbitMQ.URL)
	if err != nil {
		return err
	}

	a.RatingWorker = worker.NewRatingWorker(a.MQConn, repository.NewItemRepository(db), cfg.RabbitMQ.RatingQueue, a.Logger)
	// the worker outlives the startup context
	if err := a.RatingWorker.Start(context.WithoutCancel(ctx)); err != nil {
		return fmt.Errorf("start rating worker failed: %w", err)
	}

	a.Services, err = NewServices(cfg, db, a.Redis, a.MQConn, a.Logger)
	if err != nil {
		return err
	}

	if cfg.Seed.Enabled {
		if _, err := a.Services.Seeder().Run(ctx); err != nil {
			return fmt.Errorf("seed database failed: %w", err)
		}
	}
	return nil
}

func (a *App) Close() error {
	var closeErr error
	if a.RatingWorker != nil {
		a.RatingWorker.Close()
	}
	if a.MQConn != nil && !a.MQConn.IsClosed() {
		if err := a.MQConn.Close(); err != nil {
			closeErr = err
		}
	}
	if a.Redis != nil {
		if err := a.Redis.Close(); err != nil {
			closeErr = err
		}
	}
	if err := database.Close(a.DB); err != nil {
		closeErr = err
	}
	return closeErr
}
