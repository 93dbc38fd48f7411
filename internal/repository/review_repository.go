package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"reviewhub/internal/model"
)

type ReviewRepository struct {
	db *gorm.DB
}

func NewReviewRepository(db *gorm.DB) *ReviewRepository {
	return &ReviewRepository{db: db}
}

func (r *ReviewRepository) Create(ctx context.Context, review *model.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return fmt.Errorf("create review failed: %w", err)
	}
	return nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id string) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review failed: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) GetByUserAndItem(ctx context.Context, userID, itemID string) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Where("user_id = ? AND item_id = ?", userID, itemID).First(&review).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get review by user and item failed: %w", err)
	}
	return &review, nil
}

func (r *ReviewRepository) ListByItemID(ctx context.Context, itemID string) ([]model.Review, error) {
	var reviews []model.Review
	if err := r.db.WithContext(ctx).Where("item_id = ?", itemID).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, fmt.Errorf("list reviews by item failed: %w", err)
	}
	return reviews, nil
}

func (r *ReviewRepository) ListByUserID(ctx context.Context, userID string) ([]model.UserReview, error) {
	var reviews []model.UserReview
	err := r.db.WithContext(ctx).
		Table("reviews").
		Select("reviews.id AS review_id, reviews.item_id, items.name AS item_name, reviews.rating, reviews.review_text, reviews.created_at").
		Joins("JOIN items ON items.id = reviews.item_id").
		Where("reviews.user_id = ?", userID).
		Order("reviews.created_at DESC").
		Scan(&reviews).Error
	if err != nil {
		return nil, fmt.Errorf("list reviews by user failed: %w", err)
	}
	return reviews, nil
}

// UpdateByIDAndUserID only touches the row when userID owns it. The returned
// bool reports whether a row matched.
func (r *ReviewRepository) UpdateByIDAndUserID(ctx context.Context, id, userID string, rating int, text string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Review{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"rating":      rating,
			"review_text": text,
			"updated_at":  time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("update review failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *ReviewRepository) DeleteByIDAndUserID(ctx context.Context, id, userID string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Review{})
	if result.Error != nil {
		return false, fmt.Errorf("delete review failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
