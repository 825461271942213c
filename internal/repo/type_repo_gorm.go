package repo

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	"github.com/RobbertNaessens/webapp-backend/pkg/utils"
)

type TypeRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewTypeRepo(db *gorm.DB, log *zap.Logger) *TypeRepo {
	return &TypeRepo{db: db, log: log}
}

func (r *TypeRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Type, error) {
	var recs []TypeModel
	err := r.db.WithContext(ctx).
		Order("title ASC").
		Limit(limit).Offset(offset).
		Find(&recs).Error
	if err != nil {
		r.log.Error("type find all failed", zap.Int("limit", limit), zap.Int("offset", offset), zap.Error(err))
		return nil, err
	}
	types := make([]domain.Type, 0, len(recs))
	for _, rec := range recs {
		types = append(types, domain.Type{ID: rec.ID, Title: rec.Title})
	}
	return types, nil
}

func (r *TypeRepo) FindCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&TypeModel{}).Count(&count).Error; err != nil {
		r.log.Error("type count failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *TypeRepo) FindByID(ctx context.Context, id string) (*domain.Type, error) {
	var rec TypeModel
	err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("type find by id failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return &domain.Type{ID: rec.ID, Title: rec.Title}, nil
}

func (r *TypeRepo) Create(ctx context.Context, fields domain.TypeFields) (*domain.Type, error) {
	rec := TypeModel{ID: utils.NewID(), Title: fields.Title}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		r.log.Error("type create failed", zap.String("title", fields.Title), zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, rec.ID)
}

func (r *TypeRepo) UpdateByID(ctx context.Context, id string, fields domain.TypeFields) (*domain.Type, error) {
	err := r.db.WithContext(ctx).Model(&TypeModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"title": fields.Title}).Error
	if err != nil {
		r.log.Error("type update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *TypeRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&TypeModel{})
	if res.Error != nil {
		r.log.Error("type delete failed", zap.String("id", id), zap.Error(res.Error))
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}
