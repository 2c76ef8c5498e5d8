package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-redis/redis/v8"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	_ "github.com/fkhayef/tipsplit/docs"
	"github.com/fkhayef/tipsplit/internal/bill"
	"github.com/fkhayef/tipsplit/internal/config"
	"github.com/fkhayef/tipsplit/internal/currency"
	"github.com/fkhayef/tipsplit/internal/database"
	"github.com/fkhayef/tipsplit/internal/participant"
	"github.com/fkhayef/tipsplit/pkg/logger"
	mw "github.com/fkhayef/tipsplit/pkg/middleware"
)

// @title        Tipsplit API
// @version      1.0
// @description  Bills, participants and currencies, with the tip of each bill allocated across its participants.
// @BasePath     /api/v1
func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := config.Load()

	logr := logger.New("tipsplit", cfg.Environment)
	defer logr.Sync()

	// Initialize database connection
	db, err := database.NewPostgresConnection(cfg.DatabaseURL)
	if err != nil {
		logr.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	logr.Info("connected to database")

	if cfg.RunMigrations {
		if err := database.Migrate(context.Background(), db); err != nil {
			logr.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	// Currency directory cache; without Redis every lookup reads the database
	var cache currency.Cache = currency.NopCache{}
	if cfg.RedisURL != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         cfg.RedisURL,
			Password:     cfg.RedisPassword,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
			PoolSize:     10,
		})
		defer redisClient.Close()

		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logr.Warn("redis unavailable, currency cache will fall through to the database", zap.Error(err))
		}
		cache = currency.NewRedisCache(redisClient, cfg.CurrencyCacheTTL)
	}

	// Currency feature
	currencyRepo := currency.NewRepository(db)
	currencyService := currency.NewService(currencyRepo, cache, logr.Named("currency"))
	currencyHandler := currency.NewHandler(currencyService)

	// Bill feature (participants and currency directory injected)
	participantRepo := participant.NewRepository(db)
	billRepo := bill.NewRepository(db)
	billService := bill.NewService(billRepo, participantRepo, currencyService, logr.Named("bill"))
	billHandler := bill.NewHandler(billService)

	// Participant feature
	participantService := participant.NewService(participantRepo, billService, logr.Named("participant"))
	participantHandler := participant.NewHandler(participantService)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(mw.RequestLogger(logr))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	// API routes
	r.Route("/api/v1", func(r chi.Router) {
		// Mount feature routers
		r.Mount("/bills", billHandler.Routes())
		r.Mount("/participant", participantHandler.Routes())
		r.Mount("/currency", currencyHandler.Routes())
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logr.Info("server starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logr.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logr.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logr.Error("server forced to shutdown", zap.Error(err))
	}

	logr.Info("server exited")
}
