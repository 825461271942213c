package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/RobbertNaessens/webapp-backend/internal/core/config"
	"github.com/RobbertNaessens/webapp-backend/internal/domain"
)

type TypeService struct {
	repo       domain.TypeRepository
	log        *zap.Logger
	pagination config.Pagination
}

func NewTypeService(repo domain.TypeRepository, log *zap.Logger, pagination config.Pagination) *TypeService {
	return &TypeService{repo: repo, log: log, pagination: pagination}
}

func (s *TypeService) GetAll(ctx context.Context, limit, offset *int) (*List[domain.Type], error) {
	l, o := s.pagination.Limit, s.pagination.Offset
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}
	s.log.Debug("fetching all types", zap.Int("limit", l), zap.Int("offset", o))

	data, err := s.repo.FindAll(ctx, l, o)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.FindCount(ctx)
	if err != nil {
		return nil, err
	}
	return &List[domain.Type]{Data: data, Count: count, Limit: l, Offset: o}, nil
}

func (s *TypeService) GetByID(ctx context.Context, id string) (*domain.Type, error) {
	s.log.Debug("fetching type", zap.String("id", id))
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, notFound(map[string]any{"id": id}, "There is no type with id %s", id)
	}
	return t, nil
}

func (s *TypeService) Create(ctx context.Context, fields domain.TypeFields) (*domain.Type, error) {
	s.log.Debug("creating new type", zap.String("title", fields.Title))
	return s.repo.Create(ctx, fields)
}

func (s *TypeService) UpdateByID(ctx context.Context, id string, fields domain.TypeFields) (*domain.Type, error) {
	s.log.Debug("updating type", zap.String("id", id))
	return s.repo.UpdateByID(ctx, id, fields)
}

func (s *TypeService) DeleteByID(ctx context.Context, id string) error {
	s.log.Debug("deleting type", zap.String("id", id))
	_, err := s.repo.DeleteByID(ctx, id)
	return err
}
