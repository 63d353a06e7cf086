package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/shopapi/internal/config"
	"github.com/polkiloo/shopapi/internal/metrics"
	"github.com/polkiloo/shopapi/internal/server/http/handlers"
	"github.com/polkiloo/shopapi/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.ShopFacade, cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) *gin.Engine {
	if cfg.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	engine := gin.New()

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestID())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.CORS())
	engine.Use(middleware.DecompressRequest())
	engine.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	serviceHandler := handlers.NewServiceHandler(cfg.ServiceName, cfg.AppVersion)
	userHandler := handlers.NewUserHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade)

	engine.GET("/", serviceHandler.Info)
	engine.GET("/health", serviceHandler.Health)
	engine.GET("/metrics", gin.WrapH(m.Handler()))

	api := engine.Group("/api")

	users := api.Group("/users")
	users.POST("", userHandler.Create)
	users.GET("", userHandler.List)
	users.GET("/active", userHandler.ListActive)
	users.GET("/:id", userHandler.Get)
	users.PUT("/:id", userHandler.Update)
	users.DELETE("/:id", userHandler.Delete)
	users.POST("/:id/activate", userHandler.Activate)
	users.POST("/:id/deactivate", userHandler.Deactivate)

	orders := api.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("", orderHandler.List)
	orders.GET("/user/:userID", orderHandler.ListByUser)
	orders.GET("/:id", orderHandler.Get)
	orders.GET("/:id/total", orderHandler.Total)
	orders.PUT("/:id", orderHandler.Update)
	orders.DELETE("/:id", orderHandler.Delete)
	orders.POST("/:id/send", orderHandler.Send)
	orders.POST("/:id/deliver", orderHandler.Deliver)
	orders.POST("/:id/cancel", orderHandler.Cancel)

	return engine
}
