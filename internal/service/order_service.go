package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/RobbertNaessens/webapp-backend/internal/core/config"
	"github.com/RobbertNaessens/webapp-backend/internal/domain"
)

type OrderService struct {
	repo       domain.OrderRepository
	log        *zap.Logger
	pagination config.Pagination
}

func NewOrderService(repo domain.OrderRepository, log *zap.Logger, pagination config.Pagination) *OrderService {
	return &OrderService{repo: repo, log: log, pagination: pagination}
}

func (s *OrderService) GetAll(ctx context.Context, limit, offset *int) (*List[domain.Order], error) {
	l, o := s.pagination.Limit, s.pagination.Offset
	if limit != nil {
		l = *limit
	}
	if offset != nil {
		o = *offset
	}
	s.log.Debug("fetching all orders", zap.Int("limit", l), zap.Int("offset", o))

	data, err := s.repo.FindAll(ctx, l, o)
	if err != nil {
		return nil, err
	}
	count, err := s.repo.FindCount(ctx)
	if err != nil {
		return nil, err
	}
	return &List[domain.Order]{Data: data, Count: count, Limit: l, Offset: o}, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	s.log.Debug("fetching order", zap.String("id", id))
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order == nil {
		return nil, notFound(map[string]any{"id": id}, "There is no order with id %s", id)
	}
	return order, nil
}

// GetByUserID returns every order the user placed. A user with zero orders
// gets an empty list, never a NotFound.
func (s *OrderService) GetByUserID(ctx context.Context, userID string) (*Data[domain.Order], error) {
	s.log.Debug("fetching orders for user", zap.String("user_id", userID))
	data, err := s.repo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &Data[domain.Order]{Data: data}, nil
}

// Create stores the caller-supplied item snapshot verbatim; validating its
// shape is the route layer's job.
func (s *OrderService) Create(ctx context.Context, fields domain.OrderFields) (*domain.Order, error) {
	s.log.Debug("creating new order", zap.String("user_id", fields.UserID), zap.Int("items", len(fields.Items)))
	return s.repo.Create(ctx, fields)
}

func (s *OrderService) UpdateByID(ctx context.Context, id string, fields domain.OrderFields) (*domain.Order, error) {
	s.log.Debug("updating order", zap.String("id", id))
	return s.repo.UpdateByID(ctx, id, fields)
}

func (s *OrderService) DeleteByID(ctx context.Context, id string) error {
	s.log.Debug("deleting order", zap.String("id", id))
	_, err := s.repo.DeleteByID(ctx, id)
	return err
}
