package app

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"reviewhub/internal/logging"
	"reviewhub/internal/model"
	"reviewhub/internal/repository"
)

// RatingEventPublisher announces that an item's set of ratings changed.
type RatingEventPublisher interface {
	PublishRatingChanged(ctx context.Context, itemID string) error
}

type ReviewService struct {
	reviewRepo *repository.ReviewRepository
	itemRepo   *repository.ItemRepository
	publisher  RatingEventPublisher
	log        logging.Logger
}

type CreateReviewInput struct {
	UserID string
	ItemID string
	Rating int
	Text   string
}

type UpdateReviewInput struct {
	ReviewID string
	UserID   string
	Rating   int
	Text     string
}

func NewReviewService(
	reviewRepo *repository.ReviewRepository,
	itemRepo *repository.ItemRepository,
	publisher RatingEventPublisher,
	log logging.Logger,
) *ReviewService {
	return &ReviewService{
		reviewRepo: reviewRepo,
		itemRepo:   itemRepo,
		publisher:  publisher,
		log:        log,
	}
}

func (s *ReviewService) Create(ctx context.Context, input CreateReviewInput) (*model.Review, error) {
	if input.UserID == "" {
		return nil, ErrInvalidInput
	}
	text, err := validateReview(input.Rating, input.Text)
	if err != nil {
		return nil, err
	}

	item, err := s.itemRepo.GetByID(ctx, input.ItemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}

	existing, err := s.reviewRepo.GetByUserAndItem(ctx, input.UserID, input.ItemID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrReviewExists
	}

	review := &model.Review{
		ID:         uuid.NewString(),
		UserID:     input.UserID,
		ItemID:     input.ItemID,
		Rating:     input.Rating,
		ReviewText: text,
	}
	if err := s.reviewRepo.Create(ctx, review); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, ErrReviewExists
		case errors.Is(err, repository.ErrForeignKeyViolate):
			return nil, ErrItemNotFound
		default:
			return nil, err
		}
	}

	s.ratingChanged(ctx, review.ItemID)
	return review, nil
}

func (s *ReviewService) Update(ctx context.Context, input UpdateReviewInput) (*model.Review, error) {
	text, err := validateReview(input.Rating, input.Text)
	if err != nil {
		return nil, err
	}

	review, err := s.ownedReview(ctx, input.ReviewID, input.UserID)
	if err != nil {
		return nil, err
	}

	ok, err := s.reviewRepo.UpdateByIDAndUserID(ctx, review.ID, input.UserID, input.Rating, text)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrReviewNotFound
	}

	updated, err := s.reviewRepo.GetByID(ctx, review.ID)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrReviewNotFound
	}

	s.ratingChanged(ctx, updated.ItemID)
	return updated, nil
}

func (s *ReviewService) Delete(ctx context.Context, reviewID, userID string) error {
	review, err := s.ownedReview(ctx, reviewID, userID)
	if err != nil {
		return err
	}

	ok, err := s.reviewRepo.DeleteByIDAndUserID(ctx, review.ID, userID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrReviewNotFound
	}

	s.ratingChanged(ctx, review.ItemID)
	return nil
}

func (s *ReviewService) Get(ctx context.Context, reviewID string) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	return review, nil
}

func (s *ReviewService) ListByItem(ctx context.Context, itemID string) ([]model.Review, error) {
	item, err := s.itemRepo.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return s.reviewRepo.ListByItemID(ctx, itemID)
}

func (s *ReviewService) ListByUser(ctx context.Context, userID string) ([]model.UserReview, error) {
	if userID == "" {
		return nil, ErrInvalidInput
	}
	return s.reviewRepo.ListByUserID(ctx, userID)
}

// ownedReview loads the review and applies the ownership guard: a missing row
// is ErrReviewNotFound, someone else's row is ErrNotOwner.
func (s *ReviewService) ownedReview(ctx context.Context, reviewID, userID string) (*model.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, err
	}
	if review == nil {
		return nil, ErrReviewNotFound
	}
	if err := AssertOwner(userID, review.UserID); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *ReviewService) ratingChanged(ctx context.Context, itemID string) {
	if s.publisher == nil {
		return
	}
	// the write is committed; a client hang-up must not drop the event
	if err := s.publisher.PublishRatingChanged(context.WithoutCancel(ctx), itemID); err != nil && s.log != nil {
		s.log.Error(ctx, "publish rating event failed", "item_id", itemID, "error", err)
	}
}

func validateReview(rating int, text string) (string, error) {
	if rating < model.MinRating || rating > model.MaxRating {
		return "", ErrInvalidRating
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", ErrEmptyReviewText
	}
	return text, nil
}
