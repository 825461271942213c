package repo

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/RobbertNaessens/webapp-backend/internal/domain"
)

type UserRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewUserRepo(db *gorm.DB, log *zap.Logger) *UserRepo {
	return &UserRepo{db: db, log: log}
}

func (r *UserRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.User, error) {
	var recs []UserModel
	err := r.db.WithContext(ctx).
		Order("name ASC").
		Limit(limit).Offset(offset).
		Find(&recs).Error
	if err != nil {
		r.log.Error("user find all failed", zap.Int("limit", limit), zap.Int("offset", offset), zap.Error(err))
		return nil, err
	}
	users := make([]domain.User, 0, len(recs))
	for _, rec := range recs {
		users = append(users, recToUser(rec))
	}
	return users, nil
}

func (r *UserRepo) FindCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Count(&count).Error; err != nil {
		r.log.Error("user count failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *UserRepo) FindByID(ctx context.Context, id string) (*domain.User, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *UserRepo) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *UserRepo) findOne(ctx context.Context, query string, arg any) (*domain.User, error) {
	var rec UserModel
	err := r.db.WithContext(ctx).First(&rec, query, arg).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("user lookup failed", zap.String("query", query), zap.Error(err))
		return nil, err
	}
	u := recToUser(rec)
	return &u, nil
}

func (r *UserRepo) Create(ctx context.Context, u *domain.User) error {
	rec := UserModel{
		ID:           u.ID,
		Name:         u.Name,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		Roles:        u.Roles,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		r.log.Error("user create failed", zap.String("email", u.Email), zap.Error(err))
		return err
	}
	return nil
}

func (r *UserRepo) UpdateByID(ctx context.Context, id string, fields domain.UserFields) (*domain.User, error) {
	err := r.db.WithContext(ctx).Model(&UserModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":  fields.Name,
			"email": fields.Email,
		}).Error
	if err != nil {
		r.log.Error("user update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *UserRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&UserModel{})
	if res.Error != nil {
		r.log.Error("user delete failed", zap.String("id", id), zap.Error(res.Error))
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func recToUser(rec UserModel) domain.User {
	return domain.User{
		ID:           rec.ID,
		Name:         rec.Name,
		Email:        rec.Email,
		PasswordHash: rec.PasswordHash,
		Roles:        rec.Roles,
		Banned:       rec.Banned,
	}
}
