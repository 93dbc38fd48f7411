package app

import (
	"context"

	"reviewhub/internal/model"
	"reviewhub/internal/repository"
)

type ItemService struct {
	itemRepo *repository.ItemRepository
}

func NewItemService(itemRepo *repository.ItemRepository) *ItemService {
	return &ItemService{itemRepo: itemRepo}
}

func (s *ItemService) List(ctx context.Context) ([]model.Item, error) {
	return s.itemRepo.List(ctx)
}

func (s *ItemService) Get(ctx context.Context, id string) (*model.Item, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, ErrItemNotFound
	}
	return item, nil
}
