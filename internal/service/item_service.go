package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/RobbertNaessens/webapp-backend/internal/core/config"
	"github.com/RobbertNaessens/webapp-backend/internal/domain"
)

type ItemService struct {
	repo       domain.ItemRepository
	log        *zap.Logger
	pagination config.Pagination
}

func NewItemService(repo domain.ItemRepository, log *zap.Logger, pagination config.Pagination) *ItemService {
	return &ItemService{repo: repo, log: log, pagination: pagination}
}

// GetAll returns up to limit items starting after offset, ordered by title.
// Nil limit/offset fall back to the configured defaults.
func (s *ItemService) GetAll(ctx context.Context, limit, offset *int) (*List[domain.Item], error) {
	l, o := s.pagination.Limit, s.pagination.Offset
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}
	s.log.Debug("fetching all items", zap.Int("limit", l), zap.Int("offset", o))

	data, err := s.repo.FindAll(ctx, l, o)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.FindCount(ctx)
	if err != nil {
		return nil, err
	}
	return &List[domain.Item]{Data: data, Count: count, Limit: l, Offset: o}, nil
}

func (s *ItemService) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	s.log.Debug("fetching item", zap.String("id", id))
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, notFound(map[string]any{"id": id}, "There is no item with id %s", id)
	}
	return item, nil
}

// GetByType returns the items carrying the given type title. An empty result
// is a valid answer, not a NotFound.
func (s *ItemService) GetByType(ctx context.Context, typeTitle string) (*Data[domain.Item], error) {
	s.log.Debug("fetching items by type", zap.String("typetitle", typeTitle))
	data, err := s.repo.FindByType(ctx, typeTitle)
	if err != nil {
		return nil, err
	}
	return &Data[domain.Item]{Data: data}, nil
}

func (s *ItemService) Create(ctx context.Context, fields domain.ItemFields) (*domain.Item, error) {
	s.log.Debug("creating new item", zap.String("title", fields.Title), zap.String("type_id", fields.TypeID))
	return s.repo.Create(ctx, fields)
}

func (s *ItemService) UpdateByID(ctx context.Context, id string, fields domain.ItemFields) (*domain.Item, error) {
	s.log.Debug("updating item", zap.String("id", id))
	return s.repo.UpdateByID(ctx, id, fields)
}

func (s *ItemService) DeleteByID(ctx context.Context, id string) error {
	s.log.Debug("deleting item", zap.String("id", id))
	_, err := s.repo.DeleteByID(ctx, id)
	return err
}
