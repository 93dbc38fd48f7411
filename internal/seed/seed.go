package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"reviewhub/internal/app"
	"reviewhub/internal/logging"
	"reviewhub/internal/model"
	"reviewhub/internal/repository"
)

var demoUsers = []string{"moe", "lucy", "larry", "ethyl"}

var demoItems = []model.Item{
	{Name: "Widget", Description: "A useful widget"},
	{Name: "Gadget", Description: "A fancy gadget"},
	{Name: "Smartphone", Description: "A high-performance smartphone with a sleek design"},
	{Name: "Laptop", Description: "A lightweight laptop with powerful features"},
	{Name: "Headphones", Description: "Noise-canceling headphones for immersive sound"},
}

type demoReview struct {
	user, item string
	rating     int
	text       string
}

var demoReviews = []demoReview{
	{user: "moe", item: "Widget", rating: 4, text: "Great widget, highly recommend!"},
	{user: "lucy", item: "Gadget", rating: 5, text: "This gadget changed my life!"},
}

type demoComment struct {
	user   string
	review int
	text   string
}

var demoComments = []demoComment{
	{user: "larry", review: 0, text: "I agree with this review!"},
	{user: "ethyl", review: 1, text: "Thanks for the recommendation!"},
}

// Seeder loads demo data through the regular services, so every write goes
// through the same validation and uniqueness rules as API traffic.
type Seeder struct {
	users    *repository.UserRepository
	items    *repository.ItemRepository
	auth     *app.AuthService
	reviews  *app.ReviewService
	comments *app.CommentService
	log      logging.Logger
}

func New(
	users *repository.UserRepository,
	items *repository.ItemRepository,
	auth *app.AuthService,
	reviews *app.ReviewService,
	comments *app.CommentService,
	log logging.Logger,
) *Seeder {
	return &Seeder{
		users:    users,
		items:    items,
		auth:     auth,
		reviews:  reviews,
		comments: comments,
		log:      log,
	}
}

// Run seeds an empty database. It reports whether anything was written; a
// database that already has users is left alone.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		s.log.Info(ctx, "seed skipped, users table not empty", "users", n)
		return false, nil
	}

	userIDs := make(map[string]string, len(demoUsers))
	for _, name := range demoUsers {
		user, err := s.auth.Register(ctx, app.RegisterInput{Username: name, Password: name + "_pw"})
		if err != nil {
			return false, fmt.Errorf("seed user %s failed: %w", name, err)
		}
		userIDs[name] = user.ID
	}

	itemIDs := make(map[string]string, len(demoItems))
	for _, it := range demoItems {
		item := it
		item.ID = uuid.NewString()
		if err := s.items.Create(ctx, &item); err != nil {
			return false, fmt.Errorf("seed item %s failed: %w", item.Name, err)
		}
		itemIDs[item.Name] = item.ID
	}

	reviewIDs := make([]string, 0, len(demoReviews))
	for _, r := range demoReviews {
		review, err := s.reviews.Create(ctx, app.CreateReviewInput{
			UserID: userIDs[r.user],
			ItemID: itemIDs[r.item],
			Rating: r.rating,
			Text:   r.text,
		})
		if err != nil {
			return false, fmt.Errorf("seed review by %s failed: %w", r.user, err)
		}
		reviewIDs = append(reviewIDs, review.ID)
	}

	for _, c := range demoComments {
		if _, err := s.comments.Create(ctx, app.CreateCommentInput{
			ReviewID: reviewIDs[c.review],
			UserID:   userIDs[c.user],
			Text:     c.text,
		}); err != nil {
			return false, fmt.Errorf("seed comment by %s failed: %w", c.user, err)
		}
	}

	s.log.Info(ctx, "seed data loaded",
		"users", len(demoUsers),
		"items", len(demoItems),
		"reviews", len(demoReviews),
		"comments", len(demoComments),
	)
	return true, nil
}
