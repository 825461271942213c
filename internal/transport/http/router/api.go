package router

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/RobbertNaessens/webapp-backend/internal/core/auth"
	"github.com/RobbertNaessens/webapp-backend/internal/core/config"
	"github.com/RobbertNaessens/webapp-backend/internal/transport/http/handler"
	mdw "github.com/RobbertNaessens/webapp-backend/internal/transport/http/middleware"
)

// Handlers bundles the per-entity handlers mounted on the public engine.
type Handlers struct {
	Items  *handler.ItemHandler
	Types  *handler.TypeHandler
	Orders *handler.OrderHandler
	Users  *handler.UserHandler
}

func NewAPIEngine(l *zap.Logger, cfg *config.Config, jwter *auth.JWTer, h Handlers) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(
		mdw.RequestID(),
		mdw.RateLimit(200, 400),
		mdw.ConcurrencyLimit(300),
		mdw.MaxBodyBytes(16<<20),
		mdw.Timeout(10*time.Second),
		mdw.SimpleRecovery(),
		mdw.Metrics(),
		mdw.AccessLog(l),
		corsFromConfig(cfg.CORS),
	)

	// 健康检查
	r.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"ok": 1}) })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	authed := mdw.AuthJWT(jwter, "")
	admin := mdw.RequireRole("admin")

	items := api.Group("/items")
	{
		items.GET("/type/:typetitle", h.Items.GetByType)
		items.GET("", authed, admin, h.Items.GetAll)
		items.GET("/:id", authed, h.Items.GetByID)
		items.POST("", authed, admin, h.Items.Create)
		items.PUT("/:id", authed, admin, h.Items.UpdateByID)
		items.DELETE("/:id", authed, admin, h.Items.DeleteByID)
	}

	types := api.Group("/types")
	{
		types.GET("", h.Types.GetAll)
		types.GET("/:id", h.Types.GetByID)
		types.POST("", authed, admin, h.Types.Create)
		types.PUT("/:id", authed, admin, h.Types.UpdateByID)
		types.DELETE("/:id", authed, admin, h.Types.DeleteByID)
	}

	orders := api.Group("/orders", authed)
	{
		orders.GET("", h.Orders.GetAll)
		orders.GET("/user/:id", h.Orders.GetByUserID)
		orders.GET("/:id", h.Orders.GetByID)
		orders.POST("", h.Orders.Create)
		orders.PUT("/:id", h.Orders.UpdateByID)
		orders.DELETE("/:id", h.Orders.DeleteByID)
	}

	users := api.Group("/users")
	{
		users.POST("/login", h.Users.Login)
		users.POST("/register", h.Users.Register)
		users.GET("", authed, h.Users.GetAll)
		users.GET("/:id", authed, h.Users.GetByID)
		users.PUT("/:id", authed, admin, h.Users.UpdateByID)
		users.DELETE("/:id", authed, admin, h.Users.DeleteByID)
	}

	return r
}

func corsFromConfig(c config.CORS) gin.HandlerFunc {
	cc := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           time.Duration(c.MaxAgeSec) * time.Second,
	}
	if len(c.Origins) == 0 {
		cc.AllowAllOrigins = true
		cc.AllowCredentials = false
	} else {
		cc.AllowOrigins = c.Origins
	}
	return cors.New(cc)
}
