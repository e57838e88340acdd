package service

import (
	"context"
	"time"
)

const (
	EventReservaCreada     = "reserva.creada"
	EventReservaCancelada  = "reserva.cancelada"
	EventValoracionCreada  = "valoracion.creada"
	EventValoracionEditada = "valoracion.editada"
	EventValoracionBorrada = "valoracion.borrada"
)

type ReservaEvent struct {
	EventType     string    `json:"event_type"`
	ReservaID     int64     `json:"reserva_id"`
	UsuarioID     int64     `json:"usuario_id"`
	RestauranteID int64     `json:"restaurante_id"`
	FechaReserva  time.Time `json:"fecha_reserva"`
}

type ValoracionEvent struct {
	EventType     string `json:"event_type"`
	UsuarioID     int64  `json:"usuario_id"`
	RestauranteID int64  `json:"restaurante_id"`
	Puntuacion    int    `json:"puntuacion"`
}

// EventPublisher emits domain events. Publishing is fire-and-forget from the
// request path: failures are logged, never surfaced to the client.
type EventPublisher interface {
	PublishReservaEvent(ctx context.Context, evt ReservaEvent) error
	PublishValoracionEvent(ctx context.Context, evt ValoracionEvent) error
}
