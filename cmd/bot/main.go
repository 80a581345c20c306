package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/go-playground/validator/v10"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/campushub/student-assist-api/internal/bot"
	"github.com/campushub/student-assist-api/internal/repository"
	"github.com/campushub/student-assist-api/internal/service"
	"github.com/campushub/student-assist-api/pkg/cache"
	"github.com/campushub/student-assist-api/pkg/config"
	"github.com/campushub/student-assist-api/pkg/database"
	"github.com/campushub/student-assist-api/pkg/logger"
)

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

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to database", "error", err)
	}
	defer db.Close()

	redisClient, err := cache.NewRedis(cfg.Redis)
	if err != nil {
		logr.Sugar().Fatalw("failed to connect to redis", "error", err)
	}
	defer redisClient.Close()

	gateway, err := service.NewGeminiGateway(ctx, cfg.Gemini, logr, nil)
	if err != nil {
		logr.Sugar().Fatalw("failed to init gemini gateway", "error", err)
	}
	defer gateway.Close()

	userRepo := repository.NewUserRepository(db)
	studentRepo := repository.NewStudentRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)
	sessionRepo := repository.NewSessionRepository(redisClient, cfg.Session.TTL)

	authSvc := service.NewAuthService(userRepo, validator.New(), logr, service.AuthConfig{
		Secret:     cfg.JWT.Secret,
		Expiration: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	chatSvc := service.NewChatService(studentRepo, transcriptRepo, gateway, logr, nil)

	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		logr.Sugar().Fatalw("failed to init telegram bot", "error", err)
	}

	updateCfg := tgbotapi.NewUpdate(0)
	updateCfg.Timeout = cfg.Telegram.PollTimeout
	updates := api.GetUpdatesChan(updateCfg)

	logr.Sugar().Infow("bot running", "username", api.Self.UserName)
	bot.New(api, sessionRepo, authSvc, chatSvc, logr).Run(ctx, updates)
	logr.Sugar().Infow("bot stopped")
}
