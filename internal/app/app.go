package app

import (
	"go-storefront/internal/config"
	"go-storefront/internal/kv"
	"go-storefront/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func BuildApp(router *gin.Engine, cfg config.Config, logger *zap.Logger) error {
	router.Use(middleware.RequestID())

	// 1. Setup Storage
	var slots kv.Store
	if cfg.RedisAddr != "" {
		client, err := connectRedisWithRetry(cfg.RedisAddr, 5, logger)
		if err != nil {
			return err
		}
		slots = kv.NewRedisStore(client, "storefront")
	} else {
		fileStore, err := kv.NewFileStore(cfg.DataDir)
		if err != nil {
			return err
		}
		slots = fileStore
	}

	// 2. Register Modules & Routes
	registerModules(router, cfg, slots, logger)

	return nil
}
