package rating

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/reservafacil/reserva-api/internal/application/service"
	"github.com/reservafacil/reserva-api/internal/domain/rating"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

type RatingUseCase struct {
	repo      rating.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewRatingUseCase(repo rating.Repository, pub service.EventPublisher, log logger.Logger) *RatingUseCase {
	return &RatingUseCase{repo: repo, publisher: pub, logger: log}
}

type Input struct {
	UsuarioID     int64
	RestauranteID int64
	Puntuacion    int
	Comentario    string
}

// Add stores a rating. A second rating for the same pair yields rating.ErrDuplicate.
func (uc *RatingUseCase) Add(ctx context.Context, in Input) (*rating.Rating, error) {
	existing, err := uc.repo.FindByUsuarioAndRestaurante(ctx, in.UsuarioID, in.RestauranteID)
	if err != nil && !errors.Is(err, rating.ErrRatingNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, rating.ErrDuplicate
	}

	r := &rating.Rating{
		UsuarioID:     in.UsuarioID,
		RestauranteID: in.RestauranteID,
		Puntuacion:    in.Puntuacion,
		Comentario:    in.Comentario,
	}
	if err := uc.repo.Save(ctx, r); err != nil {
		return nil, err
	}

	uc.publish(ctx, service.EventValoracionCreada, r)
	return r, nil
}

func (uc *RatingUseCase) Update(ctx context.Context, in Input) (*rating.Rating, error) {
	r, err := uc.repo.FindByUsuarioAndRestaurante(ctx, in.UsuarioID, in.RestauranteID)
	if err != nil {
		return nil, err
	}

	r.Puntuacion = in.Puntuacion
	r.Comentario = in.Comentario
	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}

	uc.publish(ctx, service.EventValoracionEditada, r)
	return r, nil
}

func (uc *RatingUseCase) Remove(ctx context.Context, usuarioID, restauranteID int64) error {
	r, err := uc.repo.FindByUsuarioAndRestaurante(ctx, usuarioID, restauranteID)
	if err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, usuarioID, restauranteID); err != nil {
		return err
	}

	uc.publish(ctx, service.EventValoracionBorrada, r)
	return nil
}

func (uc *RatingUseCase) ListByRestaurante(ctx context.Context, restauranteID int64) ([]*rating.Rating, error) {
	return uc.repo.ListByRestaurante(ctx, restauranteID)
}

// Average returns the mean score and the rating count. count == 0 means the
// restaurant has no ratings yet; callers must not report an average of zero.
func (uc *RatingUseCase) Average(ctx context.Context, restauranteID int64) (float64, int, error) {
	return uc.repo.AverageByRestaurante(ctx, restauranteID)
}

func (uc *RatingUseCase) publish(ctx context.Context, eventType string, r *rating.Rating) {
	evt := service.ValoracionEvent{
		EventType:     eventType,
		UsuarioID:     r.UsuarioID,
		RestauranteID: r.RestauranteID,
		Puntuacion:    r.Puntuacion,
	}
	if err := uc.publisher.PublishValoracionEvent(ctx, evt); err != nil {
		uc.logger.Warn("Failed to publish valoracion event", zap.String("event_type", eventType), zap.Int64("restaurante_id", r.RestauranteID), zap.Error(err))
	}
}
