package reservation

import (
	"context"
	"errors"
	"time"
)

var ErrReservationNotFound = errors.New("reservation not found")

const (
	EstadoActiva    = "activa"
	EstadoCancelada = "cancelada"
)

// Reservation links an account to a restaurant at a date/time with the party
// composition. Cancelling never deletes the row, it only flips Estado.
type Reservation struct {
	ID            int64     `json:"id"`
	UsuarioID     int64     `json:"usuario_id"`
	RestauranteID int64     `json:"restaurante_id"`
	FechaReserva  time.Time `json:"fecha_reserva"`
	Adultos       int       `json:"adultos"`
	Ninos         int       `json:"niños"`
	Trona         bool      `json:"trona"`
	Estado        string    `json:"estado"`
}

type Repository interface {
	Save(ctx context.Context, r *Reservation) error
	FindByID(ctx context.Context, id int64) (*Reservation, error)
	ListByUsuario(ctx context.Context, usuarioID int64) ([]*Reservation, error)
	Update(ctx context.Context, r *Reservation) error
	Cancel(ctx context.Context, id int64) error
}
