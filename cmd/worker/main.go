package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/reservafacil/reserva-api/adapters/event"
	"github.com/reservafacil/reserva-api/adapters/persistence"
	"github.com/reservafacil/reserva-api/internal/application/service"
	ratingUC "github.com/reservafacil/reserva-api/internal/application/usecase/rating"
	"github.com/reservafacil/reserva-api/internal/config"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

func main() {
	fmt.Println("Starting ReservaFacil Worker...")

	// Configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)

	// Database
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Repositories
	ratingRepo := persistence.NewPostgresRatingRepo(dbPool, appLogger)
	restaurantRepo := persistence.NewPostgresRestaurantRepo(dbPool, appLogger)

	// Worker Use Case
	processValoracionUC := ratingUC.NewProcessValoracionEventUseCase(ratingRepo, restaurantRepo, appLogger)

	// Kafka Consumer
	valoracionConsumer := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  cfg.Kafka.Brokers,
		Topic:    event.TopicValoracionEvents,
		GroupID:  "valoracion-processor-group",
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
	defer valoracionConsumer.Close()

	appLogger.Info("Worker listening", zap.String("topic", event.TopicValoracionEvents))

	ctx := context.Background()
	for {
		msg, err := valoracionConsumer.ReadMessage(ctx)
		if err != nil {
			appLogger.Error("Failed to read message from Kafka", err)
			continue
		}

		var evt service.ValoracionEvent
		if err := json.Unmarshal(msg.Value, &evt); err != nil {
			appLogger.Error("Failed to unmarshal event, skipping", err, zap.String("key", string(msg.Key)))
			continue
		}

		appLogger.Info("Processing event",
			zap.String("event_type", evt.EventType),
			zap.Int64("restaurante_id", evt.RestauranteID),
		)

		if err := processValoracionUC.Execute(ctx, evt); err != nil {
			appLogger.Error("Failed to process valoracion event", err, zap.Int64("restaurante_id", evt.RestauranteID))
		}
	}
}
