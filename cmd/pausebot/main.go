package main

import (
	"context"
	"encoding/hex"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/vlasenka/pausebot/config"
	"github.com/vlasenka/pausebot/internal/auth"
	"github.com/vlasenka/pausebot/internal/content"
	handler "github.com/vlasenka/pausebot/internal/handler/http"
	"github.com/vlasenka/pausebot/internal/logger"
	"github.com/vlasenka/pausebot/internal/middleware"
	"github.com/vlasenka/pausebot/internal/notifier"
	"github.com/vlasenka/pausebot/internal/repository"
	"github.com/vlasenka/pausebot/internal/repository/postgres"
	"github.com/vlasenka/pausebot/internal/scheduler"
	"github.com/vlasenka/pausebot/internal/service"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

func main() {

	// create new config
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	// initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		log.Fatalf("Error initializing logger: %v", err)
	}
	defer logger.Log.Sync()

	// create context cancelled on SIGINT/SIGTERM
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	// initialize database
	db, err := postgres.New(ctx, cfg.DatabaseDSN)
	if err != nil {
		logger.Log.Fatal("Error initializing database", zap.Error(err))
	}
	defer db.Close()

	// migrate database
	if err := db.Migrate(); err != nil {
		logger.Log.Fatal("Error migrating database", zap.Error(err))
	}

	tokenKey, err := hex.DecodeString(cfg.TokenKey)
	if err != nil || len(tokenKey) == 0 {
		logger.Log.Fatal("Error extracting token key", zap.Error(err))
	}
	token := auth.NewAuthToken(tokenKey)

	// telegram delivery
	tg := notifier.New(cfg.TelegramAPIURL, cfg.BotToken)

	// dependency injection
	// content
	contentRepo := repository.NewContentRepository(db)
	cache := content.NewCache(contentRepo, logger.Log)
	if err := cache.Reload(ctx); err != nil {
		logger.Log.Warn("initial content load failed, serving fallbacks", zap.Error(err))
	}
	if missing := cache.MissingUIKeys(); len(missing) > 0 {
		logger.Log.Warn("ui texts missing, serving fallbacks", zap.Strings("keys", missing))
	}
	contentService := service.NewContentService(contentRepo, cache)
	contentHandler := handler.NewContentHandler(cache, contentService)

	// user
	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo)
	userHandler := handler.NewUserHandler(userService)

	// auth
	authService := service.NewAuthService(token, cfg)
	authHandler := handler.NewAuthHandler(authService)

	// order
	orderRepo := repository.NewOrderRepository(db)
	orderService := service.NewOrderService(orderRepo, cache, tg, cfg, logger.Log)
	orderHandler := handler.NewOrderHandler(orderService)

	// box order
	boxOrderRepo := repository.NewBoxOrderRepository(db)
	boxOrderService := service.NewBoxOrderService(boxOrderRepo, cache, tg, cfg, logger.Log)
	boxOrderHandler := handler.NewBoxOrderHandler(boxOrderService)

	// admin
	statsService := service.NewStatsService(orderRepo, boxOrderRepo, userRepo)
	adminHandler := handler.NewAdminHandler(orderService, boxOrderService, statsService)

	healthHandler := handler.NewHealthHandler(db, cache)

	router := chi.NewRouter()

	router.Use(middleware.Logging(logger.Log))

	router.Get("/healthz", healthHandler.Check())
	router.Post("/api/admin/login", authHandler.Login())

	// routes used by the bot frontend
	router.Group(func(group chi.Router) {
		group.Use(handler.APIKeyMiddleware(cfg.BotAPIKey))
		group.Put("/api/users/{chat_id}", userHandler.Upsert())
		group.Get("/api/users/{chat_id}", userHandler.Get())
		group.Post("/api/orders", orderHandler.Checkout())
		group.Post("/api/orders/paid", orderHandler.MarkPaid())
		group.Post("/api/boxorders", boxOrderHandler.Checkout())
		group.Put("/api/boxorders/{id}/shipping", boxOrderHandler.UpdateShipping())
		group.Post("/api/boxorders/paid", boxOrderHandler.MarkPaid())
		group.Get("/api/content/pause", contentHandler.Pause())
		group.Get("/api/content/longpause", contentHandler.LongPause())
	})

	// routes that require admin authentication
	router.Group(func(group chi.Router) {
		group.Use(handler.AuthMiddleware(token))
		group.Post("/api/admin/orders/{id}/confirm", adminHandler.ConfirmOrder())
		group.Post("/api/admin/orders/{id}/reject", adminHandler.RejectOrder())
		group.Post("/api/admin/boxorders/{id}/confirm", adminHandler.ConfirmBoxOrder())
		group.Post("/api/admin/boxorders/{id}/reject", adminHandler.RejectBoxOrder())
		group.Post("/api/admin/boxorders/{id}/ship", adminHandler.ShipBoxOrder())
		group.Post("/api/admin/boxorders/{id}/deliver", adminHandler.DeliverBoxOrder())
		group.Get("/api/admin/orders", adminHandler.ListOrders())
		group.Get("/api/admin/boxorders", adminHandler.ListBoxOrders())
		group.Get("/api/admin/stats", adminHandler.Stats())
		group.Post("/api/admin/content", contentHandler.Replace())
		group.Post("/api/admin/content/reload", contentHandler.Reload())
	})

	// reminder dispatch loop
	sched := scheduler.New(userRepo, cache, tg, logger.Log)
	go sched.Run(ctx)

	server := &http.Server{
		Addr:    cfg.ServerAddr,
		Handler: router,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer shutdownCancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Error shutting down server", zap.Error(err))
		}
	}()

	logger.Log.Info("Running server", zap.String("addr", cfg.ServerAddr))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Log.Fatal("Error starting server", zap.Error(err))
	}
}
