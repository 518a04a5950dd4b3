package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Sopejohn/freshmart/config"
	"github.com/Sopejohn/freshmart/controllers"
	"github.com/Sopejohn/freshmart/database"
	"github.com/Sopejohn/freshmart/logger"
	"github.com/Sopejohn/freshmart/metrics"
	"github.com/Sopejohn/freshmart/middleware"
	"github.com/Sopejohn/freshmart/repository"
	"github.com/Sopejohn/freshmart/routes"
	"github.com/Sopejohn/freshmart/services"
)

const analyticsCacheTTL = 60 * time.Second

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("[FreshMart] ❌ Failed to load config:", err)
	}

	zlog := logger.New(cfg.Env)
	defer zlog.Sync()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("[FreshMart] ❌ Failed to connect to DB:", err)
	}

	// Redis is optional; analytics just skips its cache without it.
	var analyticsCache *repository.AnalyticsCache
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatal("[FreshMart] ❌ Failed to connect to Redis:", err)
		}
		analyticsCache = repository.NewAnalyticsCache(redisClient, analyticsCacheTTL)
	}

	metricsClient, err := metrics.NewClient(context.Background())
	if err != nil {
		zlog.Warn("CloudWatch metrics disabled", zap.Error(err))
	}

	menuRepo := repository.NewGormMenuRepo(db)
	staffRepo := repository.NewGormStaffRepo(db)
	orderRepo := repository.NewGormOrderRepo(db)

	stripeSvc := services.NewStripeService(cfg.StripeSecretKey, zlog)
	orderSvc := services.NewOrderService(orderRepo, menuRepo, zlog)
	analyticsSvc := services.NewAnalyticsService(orderRepo, analyticsCache, zlog)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(logger.RequestLogger(zlog))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORSMiddleware(cfg.AllowedOrigins))
	r.Use(middleware.RateLimitMiddleware())
	r.Use(middleware.MetricsMiddleware(metricsClient, "freshmart"))

	routes.Register(r, routes.Controllers{
		Payment:   &controllers.PaymentController{Stripe: stripeSvc, Logger: zlog, Metrics: metricsClient},
		Auth:      &controllers.AuthController{Config: cfg, Logger: zlog},
		Menu:      controllers.NewMenuController(menuRepo, zlog),
		Staff:     controllers.NewStaffController(staffRepo, zlog),
		Orders:    controllers.NewOrderController(orderSvc),
		Analytics: controllers.NewAnalyticsController(analyticsSvc),
	}, cfg.JWTSecret)

	log.Println("[FreshMart] ✅ Running on port", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("[FreshMart] ❌ Server failed:", err)
	}
}
