package database

import (
	"gorm.io/gorm"

	"github.com/RobbertNaessens/webapp-backend/internal/domain"
	"github.com/RobbertNaessens/webapp-backend/internal/repo"
	"github.com/RobbertNaessens/webapp-backend/pkg/utils"
)

func strptr(s string) *string { return &s }

// Seed resets the webshop tables and loads the demo fixtures. All seeded
// user passwords are "12345678".
func Seed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// children first so the deletes don't trip the foreign keys
		for _, model := range []any{&repo.OrderModel{}, &repo.ItemModel{}, &repo.UserModel{}, &repo.TypeModel{}} {
			if err := tx.Where("1 = 1").Delete(model).Error; err != nil {
				return err
			}
		}

		types := []repo.TypeModel{
			{ID: "6f28c5f9-d711-4cd6-ac15-d13d71abff84", Title: "Oorbellen"},
			{ID: "6f28c5f9-d711-4cd6-ac15-d13d71abff85", Title: "Armbanden"},
			{ID: "6f28c5f9-d711-4cd6-ac15-d13d71abff86", Title: "Ketting"},
			{ID: "6f28c5f9-d711-4cd6-ac15-d13d71abff89", Title: "Sleutelhanger"},
			{ID: "6f28c5f9-d711-4cd6-ac15-d13d71abff90", Title: "Kaarsen"},
			{ID: "6f28c5f9-d711-4cd6-ac15-d13d71abff91", Title: "Geschenken"},
			{ID: "6f28c5f9-d711-4cd6-ac15-d13d71abff92", Title: "Gemaakte beelden"},
			{ID: "6f28c5f9-d711-4cd6-ac15-d13d71abff93", Title: "Gekochte beelden"},
		}
		if err := tx.Create(&types).Error; err != nil {
			return err
		}

		items := []repo.ItemModel{
			{
				ID:          "7f28c5f9-d711-4cd6-ac15-d13d71abff84",
				Title:       "item1",
				ImageSrc:    "/images/Afb3.jpg",
				TypeID:      "6f28c5f9-d711-4cd6-ac15-d13d71abff89",
				Description: strptr("Dit is een eerste voorbeeld"),
				Price:       domain.MustPrice("9.99"),
			},
			{
				ID:          "7f28c5f9-d711-4cd6-ac15-d13d71abff85",
				Title:       "item2",
				ImageSrc:    "/images/Afb3.jpg",
				TypeID:      "6f28c5f9-d711-4cd6-ac15-d13d71abff89",
				Description: strptr("Dit is een tweede voorbeeld"),
				Price:       domain.MustPrice("19.99"),
			},
			{
				ID:          "7f28c5f9-d711-4cd6-ac15-d13d71abff86",
				Title:       "item3",
				ImageSrc:    "/images/Afb4.jpg",
				TypeID:      "6f28c5f9-d711-4cd6-ac15-d13d71abff92",
				Description: strptr("Dit is een derde voorbeeld"),
				Price:       domain.MustPrice("14.99"),
			},
		}
		if err := tx.Create(&items).Error; err != nil {
			return err
		}

		users := []repo.UserModel{
			{
				ID:           "7f28c5f9-e711-5cd6-ac15-d13d71abff80",
				Name:         "Robbert Naessens",
				Email:        "robbert.naessens@hogent.be",
				PasswordHash: utils.HashPassword("12345678"),
				Roles:        domain.Roles{domain.RoleAdmin, domain.RoleUser},
			},
			{
				ID:           "7f28c5f9-e711-5cd6-ac15-d13d71abff81",
				Name:         "Test User",
				Email:        "test.user@hogent.be",
				PasswordHash: utils.HashPassword("12345678"),
				Roles:        domain.Roles{domain.RoleUser},
			},
		}
		if err := tx.Create(&users).Error; err != nil {
			return err
		}

		orders := []repo.OrderModel{
			{
				ID:     "8f28c5f9-d711-4cd6-ac15-d13d71abff84",
				UserID: "7f28c5f9-e711-5cd6-ac15-d13d71abff81",
				Items: domain.ItemSnapshots{
					{
						ID:          "7f28c5f9-d711-4cd6-ac15-d13d71abff84",
						Title:       "item1",
						ImageSrc:    "/images/Afb3.jpg",
						Description: "Dit is een eerste voorbeeld",
						Price:       domain.MustPrice("9.99"),
						Amount:      2,
					},
				},
			},
		}
		return tx.Create(&orders).Error
	})
}
