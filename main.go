package main

import (
	"log"

	"github.com/bimma2006/dhanukayaff/config"
	"github.com/bimma2006/dhanukayaff/internal/api"
	"github.com/bimma2006/dhanukayaff/pkg/logger"
)

// @title Danukaya Top-Up API
// @version 1.0
// @description Storefront and admin API for the Danukaya in-game top-up shop.

// @host localhost:8080
// @BasePath /api

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := logger.InitLogger(&logger.Config{
		Level:      cfg.LogLevel,
		Filename:   cfg.LogFilename,
		MaxSize:    cfg.LogMaxSize,
		MaxBackups: cfg.LogMaxBackups,
		MaxAge:     cfg.LogMaxAge,
		Compress:   cfg.LogCompress,
	}); err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync()

	router, err := api.NewRouter(cfg)
	if err != nil {
		log.Fatalf("failed to create router: %v", err)
	}

	logger.Log.Sugar().Infof("Danukaya Top-Up server running on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
