package router

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/RobbertNaessens/webapp-backend/internal/core/auth"
	"github.com/RobbertNaessens/webapp-backend/internal/core/database"
	"github.com/RobbertNaessens/webapp-backend/internal/repo"
	mdw "github.com/RobbertNaessens/webapp-backend/internal/transport/http/middleware"
)

func NewAdminEngine(l *zap.Logger, db *gorm.DB, jwter *auth.JWTer) *gin.Engine {
	r := gin.New()

	r.Use(
		ginzap.Ginzap(l, time.RFC3339, true),
		ginzap.RecoveryWithZap(l, true),
		mdw.MaxBodyBytes(1<<20),
		mdw.Timeout(30*time.Second),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })

	// 管理端 v1（统一要求 admin 角色）
	admin := r.Group("/admin/v1")
	admin.Use(mdw.AuthJWT(jwter, "admin"))

	mountAdminActions(admin, db)

	return r
}

// mountAdminActions wires the ops endpoints: user listing with search,
// banning, and reloading the demo fixtures.
func mountAdminActions(admin *gin.RouterGroup, db *gorm.DB) {
	type listUsersIn struct {
		Q      string `form:"q"      binding:"omitempty,max=64"`
		Limit  int    `form:"limit"  binding:"omitempty,gt=0,lte=200"`
		Offset int    `form:"offset" binding:"omitempty,gte=0"`
	}
	type adminUser struct {
		ID     string `json:"id"`
		Email  string `json:"email"`
		Name   string `json:"name"`
		Banned bool   `json:"banned"`
	}
	type listUsersOut struct {
		Data  []adminUser `json:"data"`
		Count int64       `json:"count"`
	}
	RegisterAction[listUsersIn, listUsersOut](admin, db, Action[listUsersIn, listUsersOut]{
		Method: http.MethodGet,
		Path:   "/users",
		Binder: BindQuery,
		Handler: func(c *gin.Context, tx *gorm.DB, in *listUsersIn) (listUsersOut, error) {
			limit := in.Limit
			if limit <= 0 {
				limit = 50
			}
			q := tx.Model(&repo.UserModel{})
			if in.Q != "" {
				like := "%" + in.Q + "%"
				q = q.Where("email LIKE ? OR name LIKE ?", like, like)
			}
			var count int64
			if err := q.Count(&count).Error; err != nil {
				return listUsersOut{}, Internal("count users failed", err)
			}
			var recs []repo.UserModel
			if err := q.Order("name ASC").Limit(limit).Offset(in.Offset).Find(&recs).Error; err != nil {
				return listUsersOut{}, Internal("list users failed", err)
			}
			out := listUsersOut{Data: make([]adminUser, 0, len(recs)), Count: count}
			for _, u := range recs {
				out.Data = append(out.Data, adminUser{ID: u.ID, Email: u.Email, Name: u.Name, Banned: u.Banned})
			}
			return out, nil
		},
	})

	type banIn struct {
		ID     string `json:"id"     binding:"required,uuid"`
		Banned bool   `json:"banned"`
	}
	type banOut struct {
		ID     string `json:"id"`
		Banned bool   `json:"banned"`
	}
	RegisterAction[banIn, banOut](admin, db, Action[banIn, banOut]{
		Method: http.MethodPost,
		Path:   "/users/ban",
		Binder: BindJSON,
		Handler: func(c *gin.Context, tx *gorm.DB, in *banIn) (banOut, error) {
			res := tx.Model(&repo.UserModel{}).Where("id = ?", in.ID).Update("banned", in.Banned)
			if res.Error != nil {
				return banOut{}, Internal("ban user failed", res.Error)
			}
			if res.RowsAffected == 0 {
				return banOut{}, NotFound("user not found")
			}
			return banOut{ID: in.ID, Banned: in.Banned}, nil
		},
	})

	type seedOut struct {
		Seeded bool `json:"seeded"`
	}
	RegisterAction[struct{}, seedOut](admin, db, Action[struct{}, seedOut]{
		Method: http.MethodPost,
		Path:   "/seed",
		Binder: BindNone,
		Handler: func(c *gin.Context, tx *gorm.DB, _ *struct{}) (seedOut, error) {
			if err := database.Seed(tx); err != nil {
				return seedOut{}, Internal("seed failed", err)
			}
			return seedOut{Seeded: true}, nil
		},
	})
}
