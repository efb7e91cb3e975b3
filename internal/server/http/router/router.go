package router

import (
	"log/slog"

	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"

	"github.com/polkiloo/printdesk/internal/config"
	"github.com/polkiloo/printdesk/internal/server/http/handlers"
	"github.com/polkiloo/printdesk/internal/server/http/middleware"
)

// Setup configures gin router with handlers and middleware.
func Setup(facade handlers.PrintDesk, cfg *config.Config, logger *slog.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.MaxMultipartMemory = cfg.MaxUploadBytes

	engine.Use(gin.Recovery())
	engine.Use(middleware.RequestLogger(logger))
	engine.Use(middleware.LimitBody(cfg.MaxUploadBytes))
	engine.Use(middleware.DecompressRequest(cfg.MaxUploadBytes))
	engine.Use(gzip.Gzip(gzip.DefaultCompression))

	shopHandler := handlers.NewShopHandler(facade)
	pageHandler := handlers.NewPageHandler(facade, logger)
	intakeHandler := handlers.NewIntakeHandler(facade)
	orderHandler := handlers.NewOrderHandler(facade, cfg.PricePerPage)
	adminHandler := handlers.NewAdminHandler(facade)
	healthHandler := handlers.NewHealthHandler(facade, logger)

	engine.GET("/healthz", healthHandler.Check)

	engine.POST("/shops", shopHandler.Register)
	engine.GET("/shops", shopHandler.Search)
	engine.POST("/count-pages", pageHandler.Count)
	engine.POST("/send-to-admin", intakeHandler.Submit)
	engine.GET("/send-to-admin", intakeHandler.List)

	orders := engine.Group("/orders")
	orders.POST("", orderHandler.Create)
	orders.GET("/:id", orderHandler.Get)
	orders.POST("/:id/files", orderHandler.AddFiles)
	orders.DELETE("/:id/files/:fileId", orderHandler.RemoveFile)
	orders.POST("/:id/files/:fileId/select", orderHandler.SelectFile)
	orders.PUT("/:id/files/:fileId/description", orderHandler.AttachDescription)
	orders.PUT("/:id/files/:fileId/copies", orderHandler.UpdateCopies)
	orders.POST("/:id/finalize", orderHandler.Finalize)
	orders.POST("/:id/pay", orderHandler.Pay)

	admin := engine.Group("/admin/queue")
	admin.GET("", adminHandler.Queue)
	admin.POST("/:id/complete", adminHandler.Complete)
	admin.POST("/:id/verify", adminHandler.Verify)
	admin.POST("/:id/reject", adminHandler.Reject)

	return engine
}
