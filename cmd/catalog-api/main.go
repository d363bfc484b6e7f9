package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/siscraper/catalog-api/api/swagger"
	"github.com/siscraper/catalog-api/internal/handler"
	"github.com/siscraper/catalog-api/internal/middleware"
	"github.com/siscraper/catalog-api/internal/service"
	"github.com/siscraper/catalog-api/internal/sis"
	"github.com/siscraper/catalog-api/pkg/config"
	"github.com/siscraper/catalog-api/pkg/logger"
	corsmiddleware "github.com/siscraper/catalog-api/pkg/middleware/cors"
	reqidmiddleware "github.com/siscraper/catalog-api/pkg/middleware/requestid"
)

// @title Course Catalog API
// @version 0.1.0
// @description Search proxy for the university SIS course catalog
// @BasePath /api/v1
// @schemes http https

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

	metricsSvc := service.NewMetricsService()
	sisClient := sis.New(cfg.SIS, logr, metricsSvc)

	catalogSvc := service.NewCatalogService(sisClient, logr)
	searchSvc := service.NewSearchService(sisClient, nil, logr, metricsSvc)

	catalogHandler := handler.NewCatalogHandler(catalogSvc)
	courseHandler := handler.NewCourseHandler(searchSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", metricsHandler.Health)
	r.GET("/ready", metricsHandler.Health)
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.GET("/schools", catalogHandler.Schools)
		api.GET("/schools/:school/departments", catalogHandler.Departments)
		api.GET("/terms", catalogHandler.Terms)
		api.POST("/courses/search", courseHandler.Search)
		api.POST("/courses/details", courseHandler.Details)
		api.POST("/courses/sections", courseHandler.Sections)
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "sis_base_url", cfg.SIS.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
