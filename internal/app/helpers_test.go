package app

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	redisv9 "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"reviewhub/internal/cache"
	"reviewhub/internal/logging"
	"reviewhub/internal/model"
	"reviewhub/internal/platform/sqlite"
	"reviewhub/internal/repository"
)

const testSecret = "this-is-a-test-secret-with-32-bytes!"

type recordingPublisher struct {
	mu      sync.Mutex
	itemIDs []string
	err     error
}

func (p *recordingPublisher) PublishRatingChanged(_ context.Context, itemID string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.itemIDs = append(p.itemIDs, itemID)
	return p.err
}

func (p *recordingPublisher) published() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.itemIDs...)
}

type testEnv struct {
	redis     *miniredis.Miniredis
	users     *repository.UserRepository
	items     *repository.ItemRepository
	reviews   *repository.ReviewRepository
	comments  *repository.CommentRepository
	tokens    *TokenService
	auth      *AuthService
	resolver  *IdentityResolver
	reviewSvc *ReviewService
	comment   *CommentService
	itemSvc   *ItemService
	publisher *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	db, err := sqlite.New(ctx, filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	require.NoError(t, repository.AutoMigrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)
	redisClient := redisv9.NewClient(&redisv9.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })
	denylist := cache.NewTokenDenylist(redisClient)

	tokens, err := NewTokenService(testSecret, time.Hour)
	require.NoError(t, err)

	users := repository.NewUserRepository(db)
	items := repository.NewItemRepository(db)
	reviews := repository.NewReviewRepository(db)
	comments := repository.NewCommentRepository(db)

	log := logging.Discard()
	auth, err := NewAuthService(users, tokens, denylist, bcrypt.MinCost, log)
	require.NoError(t, err)

	publisher := &recordingPublisher{}

	return &testEnv{
		redis:     mr,
		users:     users,
		items:     items,
		reviews:   reviews,
		comments:  comments,
		tokens:    tokens,
		auth:      auth,
		resolver:  NewIdentityResolver(tokens, users, denylist, log),
		reviewSvc: NewReviewService(reviews, items, publisher, log),
		comment:   NewCommentService(comments, reviews),
		itemSvc:   NewItemService(items),
		publisher: publisher,
	}
}

func (e *testEnv) register(t *testing.T, username string) *model.User {
	t.Helper()
	u, err := e.auth.Register(context.Background(), RegisterInput{Username: username, Password: username + "_pw"})
	require.NoError(t, err)
	return u
}

func (e *testEnv) item(t *testing.T, name string) *model.Item {
	t.Helper()
	it := &model.Item{ID: uuid.NewString(), Name: name, Description: "A useful " + name}
	require.NoError(t, e.items.Create(context.Background(), it))
	return it
}

func (e *testEnv) review(t *testing.T, userID, itemID string) *model.Review {
	t.Helper()
	r, err := e.reviewSvc.Create(context.Background(), CreateReviewInput{UserID: userID, ItemID: itemID, Rating: 4, Text: "solid"})
	require.NoError(t, err)
	return r
}
