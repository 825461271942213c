package repo

import (
	"gorm.io/gorm"

	"github.com/RobbertNaessens/webapp-backend/internal/domain"
)

type TypeModel struct {
	ID    string `gorm:"primaryKey;size:36"`
	Title string `gorm:"size:255;not null"`
}

func (TypeModel) TableName() string { return "types" }

type ItemModel struct {
	ID          string    `gorm:"primaryKey;size:36"`
	Title       string    `gorm:"size:255;not null"`
	ImageSrc    string    `gorm:"column:imagesrc;size:500;not null"`
	TypeID      string    `gorm:"size:36;not null"`
	Type        TypeModel `gorm:"foreignKey:TypeID;constraint:OnDelete:CASCADE"`
	Description *string   `gorm:"size:255"`
	Price       domain.Price `gorm:"type:decimal(5,2);not null"`
}

func (ItemModel) TableName() string { return "items" }

type UserModel struct {
	ID           string       `gorm:"primaryKey;size:36"`
	Name         string       `gorm:"size:255;not null"`
	Email        string       `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string       `gorm:"size:255;not null"`
	Roles        domain.Roles `gorm:"type:json;not null"`
	Banned       bool         `gorm:"not null;default:false"`
}

func (UserModel) TableName() string { return "users" }

type OrderModel struct {
	ID     string    `gorm:"primaryKey;size:36"`
	UserID string    `gorm:"size:36;not null"`
	User   UserModel `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	// Items holds the denormalized snapshot captured at order creation.
	Items domain.ItemSnapshots `gorm:"type:json;not null"`
}

func (OrderModel) TableName() string { return "orders" }

// AutoMigrate creates the four webshop tables, parents before children so
// the cascade foreign keys can be set up.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&TypeModel{}, &UserModel{}, &ItemModel{}, &OrderModel{})
}
