package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"reviewhub/internal/model"
)

type CommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	if err := r.db.WithContext(ctx).Create(comment).Error; err != nil {
		return fmt.Errorf("create comment failed: %w", err)
	}
	return nil
}

func (r *CommentRepository) GetByID(ctx context.Context, id string) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comment failed: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) GetByUserAndReview(ctx context.Context, userID, reviewID string) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.WithContext(ctx).Where("user_id = ? AND review_id = ?", userID, reviewID).First(&comment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("get comment by user and review failed: %w", err)
	}
	return &comment, nil
}

func (r *CommentRepository) ListByReviewID(ctx context.Context, reviewID string) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Where("review_id = ?", reviewID).Order("created_at ASC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments by review failed: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) ListByUserID(ctx context.Context, userID string) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, fmt.Errorf("list comments by user failed: %w", err)
	}
	return comments, nil
}

func (r *CommentRepository) UpdateByIDAndUserID(ctx context.Context, id, userID, text string) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Comment{}).
		Where("id = ? AND user_id = ?", id, userID).
		Updates(map[string]any{
			"comment_text": text,
			"updated_at":   time.Now(),
		})
	if result.Error != nil {
		return false, fmt.Errorf("update comment failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}

func (r *CommentRepository) DeleteByIDAndUserID(ctx context.Context, id, userID string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ? AND user_id = ?", id, userID).Delete(&model.Comment{})
	if result.Error != nil {
		return false, fmt.Errorf("delete comment failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
