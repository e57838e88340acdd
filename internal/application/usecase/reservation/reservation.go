package reservation

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/reservafacil/reserva-api/internal/application/service"
	"github.com/reservafacil/reserva-api/internal/domain/reservation"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

type ReservationUseCase struct {
	repo      reservation.Repository
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewReservationUseCase(repo reservation.Repository, pub service.EventPublisher, log logger.Logger) *ReservationUseCase {
	return &ReservationUseCase{repo: repo, publisher: pub, logger: log}
}

type CreateInput struct {
	UsuarioID     int64
	RestauranteID int64
	FechaReserva  time.Time
	Adultos       int
	Ninos         int
	Trona         bool
}

func (uc *ReservationUseCase) Create(ctx context.Context, in CreateInput) (*reservation.Reservation, error) {
	r := &reservation.Reservation{
		UsuarioID:     in.UsuarioID,
		RestauranteID: in.RestauranteID,
		FechaReserva:  in.FechaReserva,
		Adultos:       in.Adultos,
		Ninos:         in.Ninos,
		Trona:         in.Trona,
		Estado:        reservation.EstadoActiva,
	}
	if err := uc.repo.Save(ctx, r); err != nil {
		return nil, err
	}

	uc.publish(ctx, service.EventReservaCreada, r)
	return r, nil
}

func (uc *ReservationUseCase) Get(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *ReservationUseCase) ListByUsuario(ctx context.Context, usuarioID int64) ([]*reservation.Reservation, error) {
	return uc.repo.ListByUsuario(ctx, usuarioID)
}

type UpdateInput struct {
	ID           int64
	FechaReserva *time.Time
	Adultos      *int
	Ninos        *int
}

// Update applies only the date and party-count fields.
func (uc *ReservationUseCase) Update(ctx context.Context, in UpdateInput) (*reservation.Reservation, error) {
	r, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.FechaReserva != nil {
		r.FechaReserva = *in.FechaReserva
	}
	if in.Adultos != nil {
		r.Adultos = *in.Adultos
	}
	if in.Ninos != nil {
		r.Ninos = *in.Ninos
	}

	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

// Cancel flips the estado to "cancelada" and keeps the row.
func (uc *ReservationUseCase) Cancel(ctx context.Context, id int64) (*reservation.Reservation, error) {
	r, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := uc.repo.Cancel(ctx, id); err != nil {
		return nil, err
	}
	r.Estado = reservation.EstadoCancelada

	uc.publish(ctx, service.EventReservaCancelada, r)
	return r, nil
}

func (uc *ReservationUseCase) publish(ctx context.Context, eventType string, r *reservation.Reservation) {
	evt := service.ReservaEvent{
		EventType:     eventType,
		ReservaID:     r.ID,
		UsuarioID:     r.UsuarioID,
		RestauranteID: r.RestauranteID,
		FechaReserva:  r.FechaReserva,
	}
	if err := uc.publisher.PublishReservaEvent(ctx, evt); err != nil {
		uc.logger.Warn("Failed to publish reserva event", zap.String("event_type", eventType), zap.Int64("reserva_id", r.ID), zap.Error(err))
	}
}
