package rating

import (
	"context"

	"go.uber.org/zap"

	"github.com/reservafacil/reserva-api/internal/application/service"
	"github.com/reservafacil/reserva-api/internal/domain/rating"
	"github.com/reservafacil/reserva-api/internal/domain/restaurant"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

// ProcessValoracionEventUseCase recomputes a restaurant's denormalized average
// whenever a rating changes. It runs in the worker, off the request path.
type ProcessValoracionEventUseCase struct {
	ratingRepo     rating.Repository
	restaurantRepo restaurant.Repository
	logger         logger.Logger
}

func NewProcessValoracionEventUseCase(ratingRepo rating.Repository, restaurantRepo restaurant.Repository, log logger.Logger) *ProcessValoracionEventUseCase {
	return &ProcessValoracionEventUseCase{
		ratingRepo:     ratingRepo,
		restaurantRepo: restaurantRepo,
		logger:         log,
	}
}

// Execute reads the current aggregate from the ratings table rather than
// trusting the event payload, so replayed or reordered events converge on the
// same value.
func (uc *ProcessValoracionEventUseCase) Execute(ctx context.Context, evt service.ValoracionEvent) error {
	avg, count, err := uc.ratingRepo.AverageByRestaurante(ctx, evt.RestauranteID)
	if err != nil {
		return err
	}

	if err := uc.restaurantRepo.UpdateValoracion(ctx, evt.RestauranteID, avg); err != nil {
		return err
	}

	uc.logger.Info("Updated restaurante valoracion",
		zap.Int64("restaurante_id", evt.RestauranteID),
		zap.Float64("valoracion", avg),
		zap.Int("count", count),
	)
	return nil
}
