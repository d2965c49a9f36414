package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/tutorlink/portal-api/api/swagger"
	"github.com/tutorlink/portal-api/internal/handler"
	"github.com/tutorlink/portal-api/internal/middleware"
	"github.com/tutorlink/portal-api/internal/models"
	"github.com/tutorlink/portal-api/internal/repository"
	"github.com/tutorlink/portal-api/internal/service"
	"github.com/tutorlink/portal-api/pkg/cache"
	"github.com/tutorlink/portal-api/pkg/config"
	"github.com/tutorlink/portal-api/pkg/database"
	"github.com/tutorlink/portal-api/pkg/logger"
	corsmiddleware "github.com/tutorlink/portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/tutorlink/portal-api/pkg/middleware/requestid"
)

// @title TutorLink Portal API
// @version 1.2.0
// @description Makeup-session scheduling for guardian/tutor contracts
// @BasePath /api/v1
// @schemes http

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		// The snapshot cache degrades to per-request loads without Redis.
		logr.Sugar().Warnw("redis unavailable, snapshot caching disabled", "error", err)
		redisClient = nil
	}

	contractRepo := repository.NewContractRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	metricsSvc := service.NewMetricsService()
	rescheduleSvc := service.NewRescheduleService(service.RescheduleServiceParams{
		Contracts:     contractRepo,
		Sessions:      sessionRepo,
		Availability:  availabilityRepo,
		Cache:         cacheRepo,
		Metrics:       metricsSvc,
		Logger:        logr,
		SnapshotTTL:   cfg.Reschedule.SnapshotTTL,
		MaxWeekOffset: cfg.Reschedule.MaxWeekOffset,
	})
	availabilitySvc := service.NewAvailabilityService(availabilityRepo, nil, logr)

	rescheduleHandler := handler.NewRescheduleHandler(rescheduleSvc)
	availabilityHandler := handler.NewAvailabilityHandler(availabilitySvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	verifier := middleware.NewTokenVerifier(cfg.JWT.Secret)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		if err := db.PingContext(c.Request.Context()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unreachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.JWT(verifier))

	reschedule := api.Group("/contracts/:id/reschedule/:bookingId")
	reschedule.Use(middleware.RequireRoles(models.RoleGuardian, models.RoleAdmin))
	reschedule.GET("/calendar", rescheduleHandler.Calendar)
	reschedule.POST("/selection", rescheduleHandler.Select)
	if cfg.Export.Enabled {
		reschedule.GET("/calendar/export", rescheduleHandler.Export)
	}

	availability := api.Group("/tutors/:id/availability")
	availability.Use(middleware.RequireRoles(models.RoleTutor, models.RoleAdmin))
	availability.GET("", availabilityHandler.List)
	availability.POST("", availabilityHandler.Create)
	availability.PUT("/:windowId", availabilityHandler.Update)
	availability.DELETE("/:windowId", availabilityHandler.Delete)
	availability.POST("/import", availabilityHandler.Import)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
