package main

import (
	"log"
	"net/http"

	"food-ordering-api/config"
	"food-ordering-api/handlers"
	"food-ordering-api/middleware"
	"food-ordering-api/routes"
	"food-ordering-api/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to init logger:", err)
	}
	defer logger.Sync()

	gin.SetMode(cfg.GinMode)

	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatal("failed to init database", zap.Error(err))
	}
	if cfg.SeedOnStart {
		if err := config.SeedDB(db, cfg.SeedPassword); err != nil {
			logger.Fatal("failed to seed database", zap.Error(err))
		}
	}

	h := handlers.New(
		service.NewAuthService(db),
		service.NewOrderService(db),
		service.NewRestaurantService(db),
		service.NewPaymentService(db),
		[]byte(cfg.JWTSecret),
	)

	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(logger))

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Ordering API",
		})
	})

	routes.SetupRoutes(r, h, []byte(cfg.JWTSecret))

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited", zap.Error(err))
	}
}
