package restaurant

import (
	"context"
	"errors"
)

var (
	ErrRestaurantNotFound = errors.New("restaurant not found")
	ErrEmailTaken         = errors.New("restaurant email already registered")
)

// Restaurant is a business entity accepting reservations. Valoracion is the
// denormalized average rating, maintained by the rating worker.
type Restaurant struct {
	ID             int64    `json:"id"`
	Nombre         string   `json:"nombre"`
	Email          string   `json:"email"`
	PasswordHash   *string  `json:"-"`
	Direccion      string   `json:"direccion"`
	Latitud        *float64 `json:"latitud"`
	Longitud       *float64 `json:"longitud"`
	Telefono       string   `json:"telefono"`
	Cubiertos      int      `json:"cubiertos"`
	CantidadMesas  int      `json:"cantidad_mesas"`
	FranjaHoraria  string   `json:"franja_horaria"`
	ReservasPorDia int      `json:"reservas_por_dia"`
	CategoriasID   *int64   `json:"categorias_id"`
	Valoracion     float64  `json:"valoracion"`
	Image          string   `json:"image"`
}

type Repository interface {
	Save(ctx context.Context, r *Restaurant) error
	FindByID(ctx context.Context, id int64) (*Restaurant, error)
	FindByEmail(ctx context.Context, email string) (*Restaurant, error)
	List(ctx context.Context) ([]*Restaurant, error)
	Update(ctx context.Context, r *Restaurant) error
	UpdateValoracion(ctx context.Context, id int64, valoracion float64) error
	Delete(ctx context.Context, id int64) error
	// SaveAll inserts the given restaurants inside a single transaction and
	// rolls everything back on the first failure.
	SaveAll(ctx context.Context, rs []*Restaurant) error
}
