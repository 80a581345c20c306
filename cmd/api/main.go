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

	_ "github.com/campushub/student-assist-api/api/swagger"
	"github.com/campushub/student-assist-api/internal/handler"
	"github.com/campushub/student-assist-api/internal/middleware"
	"github.com/campushub/student-assist-api/internal/models"
	"github.com/campushub/student-assist-api/internal/repository"
	"github.com/campushub/student-assist-api/internal/service"
	"github.com/campushub/student-assist-api/pkg/config"
	"github.com/campushub/student-assist-api/pkg/database"
	"github.com/campushub/student-assist-api/pkg/logger"
	corsmiddleware "github.com/campushub/student-assist-api/pkg/middleware/cors"
	reqidmiddleware "github.com/campushub/student-assist-api/pkg/middleware/requestid"
)

// @title Student Assist API
// @version 1.0.0
// @description Role-scoped student record chat assistant
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
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	metricsSvc := service.NewMetricsService()

	gateway, err := service.NewGeminiGateway(context.Background(), cfg.Gemini, logr, metricsSvc)
	if err != nil {
		logr.Sugar().Fatalw("failed to init gemini gateway", "error", err)
	}
	defer gateway.Close()

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)

	validate := validator.New()
	authSvc := service.NewAuthService(userRepo, validate, logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	chatSvc := service.NewChatService(studentRepo, transcriptRepo, gateway, logr, metricsSvc)

	authHandler := handler.NewAuthHandler(authSvc)
	chatHandler := handler.NewChatHandler(chatSvc)
	dashboardHandler := handler.NewDashboardHandler(chatSvc)

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
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", handler.Metrics(metricsSvc))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)
	api.POST("/auth/login", authHandler.Login)

	authed := api.Group("", middleware.JWT(authSvc))
	authed.GET("/auth/me", authHandler.Me)

	chat := authed.Group("/chat")
	chat.POST("", chatHandler.Chat)
	chat.GET("/memory", chatHandler.Memory)
	chat.POST("/clear", chatHandler.Clear)
	chat.GET("/export", chatHandler.Export)

	dash := authed.Group("/dashboard")
	dash.GET("/hod", middleware.RequireRoles(models.RoleHOD), dashboardHandler.HOD)
	dash.GET("/mentor/:id", middleware.RequireRoles(models.RoleMentor), middleware.MentorScope(), dashboardHandler.Mentor)
	dash.GET("/class/:label", middleware.RequireRoles(models.RoleClassTeacher), middleware.ClassScope(), dashboardHandler.Class)
	dash.GET("/student", middleware.RequireRoles(models.RoleStudent), dashboardHandler.Student)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
