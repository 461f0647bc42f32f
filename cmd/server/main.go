package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"gamestore/backend/internal/auth"
	"gamestore/backend/internal/cache"
	"gamestore/backend/internal/config"
	"gamestore/backend/internal/database"
	"gamestore/backend/internal/events"
	"gamestore/backend/internal/handler"
	"gamestore/backend/internal/hub"
	"gamestore/backend/internal/i18n"
	"gamestore/backend/internal/logging"
	"gamestore/backend/internal/metrics"
	"gamestore/backend/internal/store"
	"gamestore/backend/internal/store/memory"
	"gamestore/backend/internal/store/supabase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	// Swagger imports
	_ "gamestore/backend/docs" // This is important for swag to find the generated docs

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// openStore builds the repository selected by STORE_DRIVER.
func openStore(cfg *config.Config, publisher events.Publisher, log *logrus.Logger) (store.Repository, error) {
	switch cfg.StoreDriver {
	case config.DriverSupabase:
		client, err := supabase.NewClient(supabase.Config{
			URL:     cfg.SupabaseURL,
			APIKey:  cfg.SupabaseAnonKey,
			Timeout: cfg.StoreTimeout,
		})
		if err != nil {
			return nil, err
		}
		return supabase.NewRepository(client), nil

	case config.DriverPostgres, config.DriverMySQL:
		dialector, err := database.Dialector(cfg.StoreDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, err
		}
		db, err := database.Open(dialector, log)
		if err != nil {
			return nil, err
		}
		return database.NewRepository(db, database.Options{
			JWTSecret:        cfg.JWTSecret,
			AccessTokenTTL:   cfg.AccessTokenTTL,
			RecoveryTokenTTL: cfg.RecoveryTokenTTL,
			Notifier:         events.ResetNotifier{Publisher: publisher},
		}), nil

	case config.DriverMemory:
		log.Warn("Using the in-memory store; data is lost on restart.")
		return memory.New(), nil
	}
	return nil, fmt.Errorf("unknown store driver %q", cfg.StoreDriver)
}

// @title           Game Storefront API
// @version         1.0
// @description     JSON API of the game storefront: catalog, reviews, blog, accounts and admin tools.
// @host            localhost:8080
// @BasePath        /api/v1
// @securityDefinitions.apiKey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg, err := config.Load(".")
	if err != nil {
		logrus.WithError(err).Fatal("Unable to load configuration")
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("Invalid configuration")
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err = run(ctx, stop, cfg, log)
	stop()
	if err != nil {
		log.WithError(err).Fatal("Server failed to start")
	}
	log.Info("Server stopped")
}

// run wires the server and blocks until ctx is cancelled. Startup errors
// are returned so that resources opened earlier are closed by their defers.
func run(ctx context.Context, stop context.CancelFunc, cfg *config.Config, log *logrus.Logger) error {
	// Events
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		amqpPublisher, err := events.NewAMQPPublisher(cfg.RabbitMQURL)
		if err != nil {
			return fmt.Errorf("connect to RabbitMQ: %w", err)
		}
		defer amqpPublisher.Close()
		publisher = amqpPublisher
	}
	publisher = events.WithLogging(publisher, log)

	// Store, optionally behind the Redis cache
	repo, err := openStore(cfg, publisher, log)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer repo.Close()

	if cfg.RedisURL != "" {
		rdb, err := cache.Dial(ctx, cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect to Redis: %w", err)
		}
		defer rdb.Close()
		repo = cache.New(repo, rdb, cfg.CacheTTL, cfg.CachePrefix, log)
	}

	tr, err := i18n.New(cfg.DefaultLanguage)
	if err != nil {
		return fmt.Errorf("load translations: %w", err)
	}

	h := handler.New(repo, tr, publisher, hub.NewHub(), log, handler.Options{
		WhatsAppNumber: cfg.ContactWhatsApp,
		InstagramURL:   cfg.ContactInstagram,
		SiteURL:        cfg.SiteURL,
	})
	guard := auth.NewGuard(repo, tr, log)
	limiter := auth.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst, tr)
	limiter.StartCleanup(ctx, time.Minute)

	router := gin.New()
	router.Use(gin.Recovery(), logging.GinLogger(log), metrics.Middleware(), tr.Middleware())

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check and metrics endpoints
	router.GET("/ping", h.Ping)
	router.GET("/metrics", metrics.Handler())

	// API v1 routes
	h.RegisterRoutes(router.Group("/api/v1"), guard, limiter)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       60 * time.Second,
		// Review streams end when the server starts shutting down.
		BaseContext: func(net.Listener) context.Context { return ctx },
	}

	go func() {
		log.WithField("port", cfg.Port).Info("Server is running")
		log.Infof("Swagger UI is available at http://localhost:%s/swagger/index.html", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Error("Server error")
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Shutdown error")
	}
	return nil
}
