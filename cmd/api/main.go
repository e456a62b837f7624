package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cicd-telegram-notifier/config"
	"cicd-telegram-notifier/config/postgre"
	_ "cicd-telegram-notifier/docs" // Swagger docs
	authHTTP "cicd-telegram-notifier/internal/auth/delivery/http"
	authRepo "cicd-telegram-notifier/internal/auth/repository/postgre"
	authUC "cicd-telegram-notifier/internal/auth/usecase"
	"cicd-telegram-notifier/internal/httpserver"
	"cicd-telegram-notifier/internal/middleware"
	notificationRepo "cicd-telegram-notifier/internal/notification/repository/postgre"
	notificationUC "cicd-telegram-notifier/internal/notification/usecase"
	projectHTTP "cicd-telegram-notifier/internal/project/delivery/http"
	projectRepo "cicd-telegram-notifier/internal/project/repository/postgre"
	projectUC "cicd-telegram-notifier/internal/project/usecase"
	subscriptionDelivery "cicd-telegram-notifier/internal/subscription/delivery/telegram"
	subscriptionRepo "cicd-telegram-notifier/internal/subscription/repository/postgre"
	subscriptionUC "cicd-telegram-notifier/internal/subscription/usecase"
	"cicd-telegram-notifier/internal/webhook"
	"cicd-telegram-notifier/pkg/log"
	"cicd-telegram-notifier/pkg/scope"
	"cicd-telegram-notifier/pkg/telegram"

	"github.com/gin-gonic/gin"
)

// @title       CI/CD Telegram Notifier API
// @description Relays CI/CD workflow events to subscribed Telegram chats.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting CI/CD Telegram Notifier...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Postgres
	db, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		logger.Error(ctx, "Failed to connect to Postgres: ", err)
		return
	}
	defer postgre.Disconnect(db)
	logger.Info(ctx, "Postgres connected")

	// 4. Telegram bot client
	telegramBot := telegram.NewBot(cfg.Telegram.BotToken)

	// 5. Domains
	jwtManager := scope.New(cfg.JWT.Secret, time.Duration(cfg.JWT.ExpiryHours)*time.Hour)
	mw := middleware.New(logger, jwtManager)

	// Auth
	aRepo := authRepo.New(db, logger)
	aUC := authUC.New(logger, aRepo, jwtManager)
	aHandler := authHTTP.New(logger, aUC)
	if cfg.Auth.DefaultUsername != "" && cfg.Auth.DefaultPassword != "" {
		if err := aUC.EnsureDefaultUser(ctx, cfg.Auth.DefaultUsername, cfg.Auth.DefaultPassword); err != nil {
			logger.Warnf(ctx, "Could not ensure default user: %v", err)
		}
	}

	// Project management
	pRepo := projectRepo.New(db, logger)
	pUC := projectUC.New(logger, pRepo)
	pHandler := projectHTTP.New(logger, pUC)

	// Notification pipeline
	nRepo := notificationRepo.New(db, logger)
	nUC := notificationUC.New(nRepo, telegramBot, logger)

	// Subscription bot commands
	sRepo := subscriptionRepo.New(db, logger)
	sUC := subscriptionUC.New(sRepo, logger)
	telegramHandler := subscriptionDelivery.New(logger, sUC, telegramBot, subscriptionDelivery.Config{
		AdminPassword: cfg.Auth.AdminPassword,
	})

	// CI workflow event webhook
	webhookHandler := webhook.NewHandler(nUC, webhook.SecurityConfig{
		Secret:          cfg.Webhook.Secret,
		AllowedIPs:      cfg.Webhook.AllowedIPs,
		RateLimitPerMin: cfg.Webhook.RateLimitPerMin,
	}, logger)

	// 6. Telegram webhook registration: auto-detect ngrok or fallback to config
	webhookURL := cfg.Telegram.WebhookURL
	if webhookURL == "" {
		ngrokURL, ngrokErr := detectNgrokURL(ctx, "http://ngrok:4040")
		if ngrokErr != nil {
			logger.Warnf(ctx, "Could not detect ngrok URL: %v", ngrokErr)
		} else {
			webhookURL = ngrokURL + "/webhook/telegram"
			logger.Infof(ctx, "Auto-detected ngrok URL: %s", webhookURL)
		}
	}
	if webhookURL != "" && cfg.Telegram.BotToken != "" {
		if whErr := telegramBot.SetWebhook(webhookURL); whErr != nil {
			logger.Warnf(ctx, "Failed to set Telegram webhook: %v", whErr)
		} else {
			logger.Infof(ctx, "Telegram webhook registered at %s", webhookURL)
		}
	}

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		TelegramHandler: telegramHandler,
		WebhookHandler:  webhookHandler,
		APIRegistrars: []httpserver.RouteRegistrar{
			func(api *gin.RouterGroup) { authHTTP.RegisterRoutes(api, aHandler, mw) },
			func(api *gin.RouterGroup) { projectHTTP.RegisterRoutes(api, pHandler, mw) },
			func(api *gin.RouterGroup) { api.GET("/webhooks", mw.Auth(), webhookHandler.ListWebhooks) },
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
