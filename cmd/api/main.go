package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/univag/eventos-api/api/swagger"
	"github.com/univag/eventos-api/internal/handler"
	"github.com/univag/eventos-api/internal/middleware"
	"github.com/univag/eventos-api/internal/repository"
	"github.com/univag/eventos-api/internal/service"
	"github.com/univag/eventos-api/pkg/cache"
	"github.com/univag/eventos-api/pkg/config"
	"github.com/univag/eventos-api/pkg/logger"
	corsmiddleware "github.com/univag/eventos-api/pkg/middleware/cors"
	reqidmiddleware "github.com/univag/eventos-api/pkg/middleware/requestid"
)

// @title Eventos UNIVAG API
// @version 0.1.0
// @description Event request, approval workflow and logistics API
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

	events := repository.NewEventRepository()
	resources := repository.NewResourceRepository()
	comments := repository.NewCommentRepository()
	if cfg.Dataset.Seed {
		if err := repository.SeedSampleData(context.Background(), events, resources, comments); err != nil {
			logr.Sugar().Fatalw("failed to seed sample dataset", "error", err)
		}
		logr.Info("sample dataset loaded")
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cache.NewMemory(), metricsSvc, cfg.Dashboard.CacheTTL, logr, cfg.Dashboard.Enabled)

	workflowSvc := service.NewWorkflowService(events, resources, comments, validate, logr,
		service.WithWorkflowMetrics(metricsSvc))
	scheduleSvc := service.NewScheduleService(events, logr)
	resourceSvc := service.NewResourceService(resources, events, logr)
	commentSvc := service.NewCommentService(comments, events, validate, logr)
	dashboardSvc := service.NewDashboardService(events, cacheSvc, cfg.Dashboard.CacheTTL, logr)
	reportSvc := service.NewReportService(events, scheduleSvc, comments, logr)

	eventHandler := handler.NewEventHandler(workflowSvc, dashboardSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	resourceHandler := handler.NewResourceHandler(resourceSvc)
	commentHandler := handler.NewCommentHandler(commentSvc)
	dashboardHandler := handler.NewDashboardHandler(dashboardSvc)
	reportHandler := handler.NewReportHandler(reportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/events", eventHandler.Create)
		api.GET("/events", eventHandler.List)
		api.GET("/events/pending", eventHandler.Pending)
		api.GET("/events/:id", eventHandler.Get)
		api.POST("/events/:id/decisions", eventHandler.Decide)
		api.GET("/events/:id/progress", eventHandler.Progress)

		api.GET("/events/:id/checklist", scheduleHandler.Checklist)
		api.DELETE("/events/:id/checklist", scheduleHandler.ResetChecklist)
		api.POST("/events/:id/checklist/:taskId/toggle", scheduleHandler.ToggleTask)
		api.GET("/events/:id/marketing/schedule", scheduleHandler.MarketingSchedule)
		api.GET("/events/:id/marketing/assets", scheduleHandler.MarketingAssets)
		api.POST("/events/:id/marketing/assets/:assetId/upload", scheduleHandler.UploadAsset)
		api.POST("/events/:id/marketing/assets/:assetId/review", scheduleHandler.ReviewAsset)

		api.GET("/events/:id/comments", commentHandler.List)
		api.POST("/events/:id/comments", commentHandler.Create)

		if cfg.Reports.Enabled {
			api.GET("/events/:id/report", reportHandler.Download)
		}

		api.GET("/resources", resourceHandler.List)
		api.GET("/resources/stats", resourceHandler.Stats)
		api.GET("/resources/:id", resourceHandler.Get)
		api.GET("/resources/:id/usage", resourceHandler.Usage)

		if cfg.Dashboard.Enabled {
			api.GET("/dashboard", dashboardHandler.Overview)
			api.GET("/dashboard/metrics", metricsHandler.Snapshot)
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
