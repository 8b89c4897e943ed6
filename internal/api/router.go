package api

import (
	"path/filepath"

	"github.com/bimma2006/dhanukayaff/config"
	_ "github.com/bimma2006/dhanukayaff/docs"
	"github.com/bimma2006/dhanukayaff/internal/api/v1/auth"
	"github.com/bimma2006/dhanukayaff/internal/api/v1/events"
	"github.com/bimma2006/dhanukayaff/internal/api/v1/orders"
	"github.com/bimma2006/dhanukayaff/internal/api/v1/packs"
	"github.com/bimma2006/dhanukayaff/internal/api/v1/player"
	"github.com/bimma2006/dhanukayaff/internal/api/v1/settings"
	"github.com/bimma2006/dhanukayaff/internal/database"
	"github.com/bimma2006/dhanukayaff/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	if _, err := database.Connect(cfg.DataDir); err != nil {
		return nil, err
	}

	router := gin.New()
	router.Use(middleware.Logger(), gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Admin-Password"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Storefront, admin panel and uploaded assets
	router.StaticFile("/", filepath.Join(cfg.WebDir, "index.html"))
	router.StaticFile("/admin.html", filepath.Join(cfg.WebDir, "admin.html"))
	router.Static("/js", filepath.Join(cfg.WebDir, "js"))
	router.Static("/uploads", cfg.UploadDir)

	adminGate := middleware.AdminAuth(cfg.AdminPassword)

	api := router.Group("/api")
	{
		auth.RegisterRoutes(api, adminGate)
		player.RegisterRoutes(api)
		orders.RegisterRoutes(api, adminGate)
		packs.RegisterRoutes(api, adminGate, cfg.UploadDir)
		events.RegisterRoutes(api, adminGate, cfg.UploadDir)
		settings.RegisterRoutes(api, adminGate, cfg.UploadDir)
	}

	return router, nil
}
