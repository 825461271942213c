package repo

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	"github.com/RobbertNaessens/webapp-backend/pkg/utils"
)

// orderSelect expands the user foreign key via a join with the live users
// table. The items column is already a fully materialized snapshot and is
// returned verbatim.
const orderSelect = "orders.id, orders.items, " +
	"users.id AS user_id, users.name AS user_name, users.email AS user_email, users.roles AS user_roles"

type orderRow struct {
	ID        string
	Items     domain.ItemSnapshots
	UserID    string
	UserName  string
	UserEmail string
	UserRoles domain.Roles
}

func (row orderRow) toDomain() domain.Order {
	return domain.Order{
		ID: row.ID,
		User: domain.User{
			ID:    row.UserID,
			Name:  row.UserName,
			Email: row.UserEmail,
			Roles: row.UserRoles,
		},
		Items: row.Items,
	}
}

type OrderRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewOrderRepo(db *gorm.DB, log *zap.Logger) *OrderRepo {
	return &OrderRepo{db: db, log: log}
}

func (r *OrderRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("orders").
		Select(orderSelect).
		Joins("JOIN users ON users.id = orders.user_id")
}

func (r *OrderRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Order, error) {
	var rows []orderRow
	err := r.joined(ctx).Limit(limit).Offset(offset).Scan(&rows).Error
	if err != nil {
		r.log.Error("order find all failed", zap.Int("limit", limit), zap.Int("offset", offset), zap.Error(err))
		return nil, err
	}
	return rowsToOrders(rows), nil
}

func (r *OrderRepo) FindCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&OrderModel{}).Count(&count).Error; err != nil {
		r.log.Error("order count failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *OrderRepo) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	var row orderRow
	err := r.joined(ctx).Where("orders.id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("order find by id failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	order := row.toDomain()
	return &order, nil
}

func (r *OrderRepo) FindByUserID(ctx context.Context, userID string) ([]domain.Order, error) {
	var rows []orderRow
	err := r.joined(ctx).Where("orders.user_id = ?", userID).Scan(&rows).Error
	if err != nil {
		r.log.Error("order find by user failed", zap.String("user_id", userID), zap.Error(err))
		return nil, err
	}
	return rowsToOrders(rows), nil
}

// Create stores the caller-supplied snapshot verbatim, then re-reads so the
// response carries the expanded user.
func (r *OrderRepo) Create(ctx context.Context, fields domain.OrderFields) (*domain.Order, error) {
	rec := OrderModel{
		ID:     utils.NewID(),
		UserID: fields.UserID,
		Items:  fields.Items,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		r.log.Error("order create failed", zap.String("user_id", fields.UserID), zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, rec.ID)
}

// UpdateByID overwrites both columns unconditionally.
func (r *OrderRepo) UpdateByID(ctx context.Context, id string, fields domain.OrderFields) (*domain.Order, error) {
	err := r.db.WithContext(ctx).Model(&OrderModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"user_id": fields.UserID,
			"items":   fields.Items,
		}).Error
	if err != nil {
		r.log.Error("order update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *OrderRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&OrderModel{})
	if res.Error != nil {
		r.log.Error("order delete failed", zap.String("id", id), zap.Error(res.Error))
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func rowsToOrders(rows []orderRow) []domain.Order {
	orders := make([]domain.Order, 0, len(rows))
	for _, row := range rows {
		orders = append(orders, row.toDomain())
	}
	return orders
}
