package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/nsthome/institute-api/api/swagger"
	"github.com/nsthome/institute-api/internal/handler"
	"github.com/nsthome/institute-api/internal/middleware"
	"github.com/nsthome/institute-api/internal/models"
	"github.com/nsthome/institute-api/internal/repository"
	"github.com/nsthome/institute-api/internal/service"
	"github.com/nsthome/institute-api/pkg/cache"
	"github.com/nsthome/institute-api/pkg/config"
	"github.com/nsthome/institute-api/pkg/database"
	"github.com/nsthome/institute-api/pkg/logger"
	corsmiddleware "github.com/nsthome/institute-api/pkg/middleware/cors"
	reqidmiddleware "github.com/nsthome/institute-api/pkg/middleware/requestid"
)

// @title NST Home Institute API
// @version 1.0.0
// @description Backend for the NST Home tutoring institute site and dashboards
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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to postgres", "error", err)
	}
	defer db.Close()

	var redisClient *redis.Client
	if cfg.Dashboard.CacheEnabled {
		redisClient, err = cache.NewRedis(cfg.Redis)
		if err != nil {
			// The content cache is an optimization; run without it.
			logr.Sugar().Warnw("redis unavailable, dashboard cache disabled", "error", err)
			redisClient = nil
		}
	}

	validate := validator.New()
	metricsSvc := service.NewMetricsService()

	studentRepo := repository.NewStudentRepository(db)
	liveClassRepo := repository.NewLiveClassRepository(db)
	materialRepo := repository.NewMaterialRepository(db)
	scheduleRepo := repository.NewScheduleRepository(db)
	courseRepo := repository.NewCourseRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)
	cacheRepo := repository.NewCacheRepository(redisClient, logr)

	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Dashboard.CacheTTL, logr, cfg.Dashboard.CacheEnabled && redisClient != nil)

	authSvc := service.NewAuthService(studentRepo, validate, logr, service.AuthConfig{
		TokenSecret: cfg.JWT.Secret,
		TokenExpiry: cfg.JWT.Expiration,
		Issuer:      cfg.JWT.Issuer,
		AdminPhone:  cfg.Admin.Phone,
		AdminName:   cfg.Admin.Name,
	})
	studentSvc := service.NewStudentService(studentRepo, validate, logr)
	contentSvc := service.NewContentService(studentRepo, liveClassRepo, materialRepo, scheduleRepo, cacheSvc, logr)
	liveClassSvc := service.NewLiveClassService(liveClassRepo, contentSvc, validate, logr, cfg.LiveClass.Duration)
	materialSvc := service.NewMaterialService(materialRepo, contentSvc, validate, logr)
	scheduleSvc := service.NewScheduleService(scheduleRepo, contentSvc, validate, logr)
	courseSvc := service.NewCourseService(courseRepo)
	inquirySvc := service.NewInquiryService(inquiryRepo, validate, logr)
	exportSvc := service.NewExportService(studentRepo, logr)

	authHandler := handler.NewAuthHandler(authSvc)
	studentHandler := handler.NewStudentHandler(studentSvc)
	dashboardHandler := handler.NewDashboardHandler(contentSvc)
	liveClassHandler := handler.NewLiveClassHandler(liveClassSvc)
	materialHandler := handler.NewMaterialHandler(materialSvc)
	scheduleHandler := handler.NewScheduleHandler(scheduleSvc)
	courseHandler := handler.NewCourseHandler(courseSvc)
	inquiryHandler := handler.NewInquiryHandler(inquirySvc)
	exportHandler := handler.NewExportHandler(exportSvc)
	metricsHandler := handler.NewMetricsHandler(metricsSvc)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/ready", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", metricsHandler.Prometheus)

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	{
		api.POST("/auth/signup", authHandler.Signup)
		api.POST("/auth/login", authHandler.Login)
		api.GET("/courses", courseHandler.List)
		api.POST("/contact", inquiryHandler.Submit)

		student := api.Group("/student")
		student.Use(middleware.Session(authSvc), middleware.RequireRole(models.RoleStudent))
		{
			student.GET("/dashboard", dashboardHandler.Student)
		}

		admin := api.Group("/admin")
		admin.Use(middleware.Session(authSvc), middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/students", studentHandler.List)
			admin.PATCH("/students/:id/status", studentHandler.SetStatus)
			admin.DELETE("/students/:id", studentHandler.Delete)

			admin.POST("/live-classes", liveClassHandler.Start)
			admin.GET("/live-classes", liveClassHandler.Recent)

			admin.POST("/materials", materialHandler.Publish)
			admin.GET("/materials", materialHandler.List)
			admin.DELETE("/materials/:id", materialHandler.Delete)

			admin.POST("/schedules", scheduleHandler.Add)
			admin.GET("/schedules", scheduleHandler.List)
			admin.DELETE("/schedules/:id", scheduleHandler.Delete)

			admin.GET("/inquiries", inquiryHandler.List)

			if cfg.Exports.Enabled {
				admin.GET("/export/students", exportHandler.Students)
			}
		}
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Info("server starting", zap.String("addr", addr), zap.String("env", cfg.Env))
	if err := r.Run(addr); err != nil {
		logr.Fatal("server failed", zap.Error(err))
	}
}
