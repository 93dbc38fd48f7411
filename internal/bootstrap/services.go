package bootstrap

import (
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	appsvc "reviewhub/internal/app"
	"reviewhub/internal/cache"
	"reviewhub/internal/config"
	"reviewhub/internal/logging"
	rabbitmqClient "reviewhub/internal/platform/rabbitmq"
	"reviewhub/internal/repository"
	"reviewhub/internal/seed"
)

// Services is the wired application layer shared by the HTTP router and the
// seeder.
type Services struct {
	Auth     *appsvc.AuthService
	Identity *appsvc.IdentityResolver
	Items    *appsvc.ItemService
	Reviews  *appsvc.ReviewService
	Comments *appsvc.CommentService

	userRepo *repository.UserRepository
	itemRepo *repository.ItemRepository
	log      logging.Logger
}

// NewServices wires repositories and services. redisClient and mqConn may be
// nil: tokens are then not revocable and no rating events are published.
func NewServices(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, mqConn *amqp.Connection, log logging.Logger) (*Services, error) {
	tokens, err := appsvc.NewTokenService(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.JWTExpireMinute)*time.Minute)
	if err != nil {
		return nil, err
	}

	var denylist appsvc.TokenDenylist
	if redisClient != nil {
		denylist = cache.NewTokenDenylist(redisClient)
	}

	var publisher appsvc.RatingEventPublisher
	if mqConn != nil {
		publisher = rabbitmqClient.NewRatingPublisher(mqConn, cfg.RabbitMQ.RatingQueue)
	}

	userRepo := repository.NewUserRepository(db)
	itemRepo := repository.NewItemRepository(db)
	reviewRepo := repository.NewReviewRepository(db)
	commentRepo := repository.NewCommentRepository(db)

	authService, err := appsvc.NewAuthService(userRepo, tokens, denylist, cfg.Auth.BcryptCost, log)
	if err != nil {
		return nil, err
	}

	return &Services{
		Auth:     authService,
		Identity: appsvc.NewIdentityResolver(tokens, userRepo, denylist, log),
		Items:    appsvc.NewItemService(itemRepo),
		Reviews:  appsvc.NewReviewService(reviewRepo, itemRepo, publisher, log),
		Comments: appsvc.NewCommentService(commentRepo, reviewRepo),
		userRepo: userRepo,
		itemRepo: itemRepo,
		log:      log,
	}, nil
}

func (s *Services) Seeder() *seed.Seeder {
	return seed.New(s.userRepo, s.itemRepo, s.Auth, s.Reviews, s.Comments, s.log.With("component", "seed"))
}
