package repo

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	"github.com/RobbertNaessens/webapp-backend/pkg/utils"
)

// itemSelect pulls the item columns plus the joined type columns under
// deterministic aliases; itemRow is the typed projection they scan into.
const itemSelect = "items.id, items.title, items.imagesrc, items.description, items.price, " +
	"types.id AS type_id, types.title AS type_title"

type itemRow struct {
	ID          string
	Title       string
	ImageSrc    string `gorm:"column:imagesrc"`
	Description *string
	Price       domain.Price
	TypeID      string
	TypeTitle   string
}

func (row itemRow) toDomain() domain.Item {
	return domain.Item{
		ID:          row.ID,
		Title:       row.Title,
		ImageSrc:    row.ImageSrc,
		Type:        domain.Type{ID: row.TypeID, Title: row.TypeTitle},
		Description: row.Description,
		Price:       row.Price,
	}
}

type ItemRepo struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewItemRepo(db *gorm.DB, log *zap.Logger) *ItemRepo {
	return &ItemRepo{db: db, log: log}
}

func (r *ItemRepo) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Table("items").
		Select(itemSelect).
		Joins("JOIN types ON types.id = items.type_id")
}

func (r *ItemRepo) FindAll(ctx context.Context, limit, offset int) ([]domain.Item, error) {
	var rows []itemRow
	err := r.joined(ctx).
		Order("items.title ASC").
		Limit(limit).Offset(offset).
		Scan(&rows).Error
	if err != nil {
		r.log.Error("item find all failed", zap.Int("limit", limit), zap.Int("offset", offset), zap.Error(err))
		return nil, err
	}
	return rowsToItems(rows), nil
}

func (r *ItemRepo) FindCount(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&ItemModel{}).Count(&count).Error; err != nil {
		r.log.Error("item count failed", zap.Error(err))
		return 0, err
	}
	return count, nil
}

func (r *ItemRepo) FindByID(ctx context.Context, id string) (*domain.Item, error) {
	var row itemRow
	err := r.joined(ctx).Where("items.id = ?", id).Take(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("item find by id failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	item := row.toDomain()
	return &item, nil
}

func (r *ItemRepo) FindByType(ctx context.Context, typeTitle string) ([]domain.Item, error) {
	var rows []itemRow
	err := r.joined(ctx).
		Where("types.title = ?", typeTitle).
		Order("items.title ASC").
		Scan(&rows).Error
	if err != nil {
		r.log.Error("item find by type failed", zap.String("typetitle", typeTitle), zap.Error(err))
		return nil, err
	}
	return rowsToItems(rows), nil
}

// Create inserts and then re-reads through FindByID so the returned item has
// the same expanded shape as any other read.
func (r *ItemRepo) Create(ctx context.Context, fields domain.ItemFields) (*domain.Item, error) {
	rec := ItemModel{
		ID:          utils.NewID(),
		Title:       fields.Title,
		ImageSrc:    fields.ImageSrc,
		TypeID:      fields.TypeID,
		Description: fields.Description,
		Price:       fields.Price,
	}
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		r.log.Error("item create failed", zap.String("title", fields.Title), zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, rec.ID)
}

// UpdateByID overwrites every column unconditionally; an omitted description
// is written as NULL, not skipped.
func (r *ItemRepo) UpdateByID(ctx context.Context, id string, fields domain.ItemFields) (*domain.Item, error) {
	err := r.db.WithContext(ctx).Model(&ItemModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":       fields.Title,
			"imagesrc":    fields.ImageSrc,
			"type_id":     fields.TypeID,
			"description": fields.Description,
			"price":       fields.Price,
		}).Error
	if err != nil {
		r.log.Error("item update failed", zap.String("id", id), zap.Error(err))
		return nil, err
	}
	return r.FindByID(ctx, id)
}

func (r *ItemRepo) DeleteByID(ctx context.Context, id string) (bool, error) {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&ItemModel{})
	if res.Error != nil {
		r.log.Error("item delete failed", zap.String("id", id), zap.Error(res.Error))
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func rowsToItems(rows []itemRow) []domain.Item {
	items := make([]domain.Item, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	return items
}
