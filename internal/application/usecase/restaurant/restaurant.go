package restaurant

import (
	"context"

	"github.com/reservafacil/reserva-api/internal/domain/restaurant"
	"github.com/reservafacil/reserva-api/pkg/auth"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

type RestaurantUseCase struct {
	repo   restaurant.Repository
	logger logger.Logger
}

func NewRestaurantUseCase(repo restaurant.Repository, log logger.Logger) *RestaurantUseCase {
	return &RestaurantUseCase{repo: repo, logger: log}
}

type RegisterInput struct {
	Nombre         string
	Email          string
	Password       string
	Direccion      string
	Latitud        *float64
	Longitud       *float64
	Telefono       string
	Cubiertos      int
	CantidadMesas  int
	FranjaHoraria  string
	ReservasPorDia int
	CategoriasID   *int64
}

func (uc *RestaurantUseCase) Register(ctx context.Context, in RegisterInput) (*restaurant.Restaurant, error) {
	r := &restaurant.Restaurant{
		Nombre:         in.Nombre,
		Email:          in.Email,
		Direccion:      in.Direccion,
		Latitud:        in.Latitud,
		Longitud:       in.Longitud,
		Telefono:       in.Telefono,
		Cubiertos:      in.Cubiertos,
		CantidadMesas:  in.CantidadMesas,
		FranjaHoraria:  in.FranjaHoraria,
		ReservasPorDia: in.ReservasPorDia,
		CategoriasID:   in.CategoriasID,
	}

	if in.Password != "" {
		hash, err := auth.HashPassword(in.Password)
		if err != nil {
			return nil, err
		}
		r.PasswordHash = &hash
	}

	if err := uc.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *RestaurantUseCase) Get(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *RestaurantUseCase) List(ctx context.Context) ([]*restaurant.Restaurant, error) {
	return uc.repo.List(ctx)
}

type UpdateInput struct {
	ID             int64
	Nombre         *string
	Email          *string
	Password       *string
	Direccion      *string
	Latitud        *float64
	Longitud       *float64
	Telefono       *string
	Cubiertos      *int
	CantidadMesas  *int
	FranjaHoraria  *string
	ReservasPorDia *int
	Valoracion     *float64
	CategoriasID   *int64
	Image          *string
}

func (uc *RestaurantUseCase) Update(ctx context.Context, in UpdateInput) (*restaurant.Restaurant, error) {
	r, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Nombre != nil {
		r.Nombre = *in.Nombre
	}
	if in.Email != nil {
		r.Email = *in.Email
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		r.PasswordHash = &hash
	}
	if in.Direccion != nil {
		r.Direccion = *in.Direccion
	}
	if in.Latitud != nil {
		r.Latitud = in.Latitud
	}
	if in.Longitud != nil {
		r.Longitud = in.Longitud
	}
	if in.Telefono != nil {
		r.Telefono = *in.Telefono
	}
	if in.Cubiertos != nil {
		r.Cubiertos = *in.Cubiertos
	}
	if in.CantidadMesas != nil {
		r.CantidadMesas = *in.CantidadMesas
	}
	if in.FranjaHoraria != nil {
		r.FranjaHoraria = *in.FranjaHoraria
	}
	if in.ReservasPorDia != nil {
		r.ReservasPorDia = *in.ReservasPorDia
	}
	if in.Valoracion != nil {
		r.Valoracion = *in.Valoracion
	}
	if in.CategoriasID != nil {
		r.CategoriasID = in.CategoriasID
	}
	if in.Image != nil {
		r.Image = *in.Image
	}

	if err := uc.repo.Update(ctx, r); err != nil {
		return nil, err
	}
	return r, nil
}

func (uc *RestaurantUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}

// Seed inserts the demo restaurant list in a single transaction.
func (uc *RestaurantUseCase) Seed(ctx context.Context) error {
	return uc.repo.SaveAll(ctx, seedRestaurants())
}
