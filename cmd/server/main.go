package main

import (
	"context"
	"fmt"
	"log"

	"github.com/reservafacil/reserva-api/adapters/event"
	httpAdapter "github.com/reservafacil/reserva-api/adapters/http"
	"github.com/reservafacil/reserva-api/adapters/media_storage"
	"github.com/reservafacil/reserva-api/adapters/persistence"
	accountUC "github.com/reservafacil/reserva-api/internal/application/usecase/account"
	authUC "github.com/reservafacil/reserva-api/internal/application/usecase/auth"
	favoriteUC "github.com/reservafacil/reserva-api/internal/application/usecase/favorite"
	ratingUC "github.com/reservafacil/reserva-api/internal/application/usecase/rating"
	reservationUC "github.com/reservafacil/reserva-api/internal/application/usecase/reservation"
	restaurantUC "github.com/reservafacil/reserva-api/internal/application/usecase/restaurant"
	"github.com/reservafacil/reserva-api/internal/config"
	"github.com/reservafacil/reserva-api/pkg/auth"
	"github.com/reservafacil/reserva-api/pkg/logger"
	"github.com/reservafacil/reserva-api/pkg/tracing"
)

func main() {
	fmt.Println("Start ReservaFacil API Server...")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Tracing
	tp, err := tracing.NewTracerProvider(cfg, appLogger, "reserva-api")
	if err != nil {
		appLogger.Fatal("Cannot init tracer", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			appLogger.Error("Failed to shutdown tracer", err)
		}
	}()

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg.Kafka.Brokers)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	accountRepo := persistence.NewPostgresAccountRepo(dbPool, appLogger)
	restaurantRepo := persistence.NewPostgresRestaurantRepo(dbPool, appLogger)
	reservationRepo := persistence.NewPostgresReservationRepo(dbPool, appLogger)
	favoriteRepo := persistence.NewPostgresFavoriteRepo(dbPool, appLogger)
	ratingRepo := persistence.NewPostgresRatingRepo(dbPool, appLogger)
	tokenStore := persistence.NewRedisTokenStore(redisClient)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.AccessLifespan, cfg.Auth.RefreshLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Use Cases
	authUseCase := authUC.NewAuthUseCase(accountRepo, restaurantRepo, jwtSvc, tokenStore, appLogger)
	accountUseCase := accountUC.NewAccountUseCase(accountRepo, appLogger)
	restaurantUseCase := restaurantUC.NewRestaurantUseCase(restaurantRepo, appLogger)
	reservationUseCase := reservationUC.NewReservationUseCase(reservationRepo, kafkaClient, appLogger)
	favoriteUseCase := favoriteUC.NewFavoriteUseCase(favoriteRepo, appLogger)
	ratingUseCase := ratingUC.NewRatingUseCase(ratingRepo, kafkaClient, appLogger)

	// HTTP Handlers
	accountHandler := httpAdapter.NewAccountHandler(accountUseCase, authUseCase, appLogger)
	restaurantHandler := httpAdapter.NewRestaurantHandler(restaurantUseCase, authUseCase, appLogger)
	reservationHandler := httpAdapter.NewReservationHandler(reservationUseCase, appLogger)
	favoriteHandler := httpAdapter.NewFavoriteHandler(favoriteUseCase, appLogger)
	ratingHandler := httpAdapter.NewRatingHandler(ratingUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(uploader, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	router := httpAdapter.NewRouter(
		authMiddleware,
		accountHandler,
		restaurantHandler,
		reservationHandler,
		favoriteHandler,
		ratingHandler,
		mediaHandler,
	)

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
