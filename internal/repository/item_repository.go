package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"reviewhub/internal/model"
)

type ItemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) *ItemRepository {
	return &ItemRepository{db: db}
}

func (r *ItemRepository) Create(ctx context.Context, item *model.Item) error {
	if err := r.db.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("create item failed: %w", err)
	}
	return nil
}

func (r *ItemRepository) List(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("list items failed: %w", err)
	}
	return items, nil
}

func (r *ItemRepository) GetByID(ctx context.Context, id string) (*model.Item, error) {
	var item model.Item
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("query item by id failed: %w", err)
	}
	return &item, nil
}

// RecomputeAverageRating sets average_rating from the item's current reviews
// in one statement, 0 when there are none.
func (r *ItemRepository) RecomputeAverageRating(ctx context.Context, id string) error {
	avg := gorm.Expr("COALESCE((SELECT ROUND(AVG(rating), 1) FROM reviews WHERE item_id = ?), 0)", id)
	if err := r.db.WithContext(ctx).Model(&model.Item{}).Where("id = ?", id).Update("average_rating", avg).Error; err != nil {
		return fmt.Errorf("recompute average rating failed: %w", err)
	}
	return nil
}

func (r *ItemRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Item{})
	if result.Error != nil {
		return false, fmt.Errorf("delete item failed: %w", result.Error)
	}
	return result.RowsAffected > 0, nil
}
