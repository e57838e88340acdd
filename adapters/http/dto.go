package http

import (
	"time"

	"github.com/reservafacil/reserva-api/internal/domain/account"
	"github.com/reservafacil/reserva-api/internal/domain/favorite"
	"github.com/reservafacil/reserva-api/internal/domain/rating"
	"github.com/reservafacil/reserva-api/internal/domain/reservation"
	"github.com/reservafacil/reserva-api/internal/domain/restaurant"
)

// --- Requests ---

type SignupUsuarioRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUsuarioRequest struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Nombres   *string `json:"nombres"`
	Apellidos *string `json:"apellidos"`
	Telefono  *string `json:"telefono"`
}

type SignupRestauranteRequest struct {
	Nombre         string   `json:"nombre"`
	Email          string   `json:"email"`
	Password       string   `json:"password"`
	Direccion      string   `json:"direccion"`
	Latitud        *float64 `json:"latitud"`
	Longitud       *float64 `json:"longitud"`
	Telefono       string   `json:"telefono"`
	Cubiertos      int      `json:"cubiertos"`
	CantidadMesas  int      `json:"cantidad_mesas"`
	FranjaHoraria  string   `json:"franja_horaria"`
	ReservasPorDia int      `json:"reservas_por_dia"`
	CategoriasID   *int64   `json:"categorias_id"`
}

type UpdateRestauranteRequest struct {
	Nombre         *string  `json:"nombre"`
	Email          *string  `json:"email"`
	Password       *string  `json:"password"`
	Direccion      *string  `json:"direccion"`
	Latitud        *float64 `json:"latitud"`
	Longitud       *float64 `json:"longitud"`
	Telefono       *string  `json:"telefono"`
	Cubiertos      *int     `json:"cubiertos"`
	CantidadMesas  *int     `json:"cantidad_mesas"`
	FranjaHoraria  *string  `json:"franja_horaria"`
	ReservasPorDia *int     `json:"reservas_por_dia"`
	CategoriasID   *int64   `json:"categorias_id"`
	Valoracion     *float64 `json:"valoracion"`
	Image          *string  `json:"image"`
}

// Pointer fields so zero values (adultos 0, trona false) still count as present.
type CreateReservaRequest struct {
	RestauranteID *int64     `json:"restaurante_id" binding:"required"`
	FechaReserva  *time.Time `json:"fecha_reserva" binding:"required"`
	Adultos       *int       `json:"adultos" binding:"required"`
	Ninos         *int       `json:"niños" binding:"required"`
	Trona         *bool      `json:"trona" binding:"required"`
}

type UpdateReservaRequest struct {
	FechaReserva *time.Time `json:"fecha_reserva"`
	Adultos      *int       `json:"adultos"`
	Ninos        *int       `json:"niños"`
}

type FavoritoRequest struct {
	RestaurantesID *int64 `json:"restaurantes_id"`
}

type CreateValoracionRequest struct {
	RestauranteID *int64 `json:"restaurante_id"`
	Puntuacion    *int   `json:"puntuacion"`
	Comentario    string `json:"comentario"`
}

type UpdateValoracionRequest struct {
	RestauranteID *int64  `json:"restaurante_id"`
	Puntuacion    *int    `json:"puntuacion"`
	Comentario    *string `json:"comentario"`
}

type DeleteValoracionRequest struct {
	RestauranteID *int64 `json:"restaurante_id"`
}

// --- Responses ---

type UsuarioDTO struct {
	ID        int64  `json:"id"`
	Email     string `json:"email"`
	Nombres   string `json:"nombres"`
	Apellidos string `json:"apellidos"`
	Telefono  string `json:"telefono"`
	Creado    string `json:"creado"`
}

func ToUsuarioDTO(a *account.Account) UsuarioDTO {
	return UsuarioDTO{
		ID:        a.ID,
		Email:     a.Email,
		Nombres:   a.Nombres,
		Apellidos: a.Apellidos,
		Telefono:  a.Telefono,
		Creado:    a.Creado.Format(time.RFC3339),
	}
}

type RestauranteDTO struct {
	ID             int64    `json:"id"`
	Nombre         string   `json:"nombre"`
	Email          string   `json:"email"`
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

func ToRestauranteDTO(r *restaurant.Restaurant) RestauranteDTO {
	return RestauranteDTO{
		ID:             r.ID,
		Nombre:         r.Nombre,
		Email:          r.Email,
		Direccion:      r.Direccion,
		Latitud:        r.Latitud,
		Longitud:       r.Longitud,
		Telefono:       r.Telefono,
		Cubiertos:      r.Cubiertos,
		CantidadMesas:  r.CantidadMesas,
		FranjaHoraria:  r.FranjaHoraria,
		ReservasPorDia: r.ReservasPorDia,
		CategoriasID:   r.CategoriasID,
		Valoracion:     r.Valoracion,
		Image:          r.Image,
	}
}

type ReservaDTO struct {
	ID            int64  `json:"id"`
	UsuarioID     int64  `json:"usuario_id"`
	RestauranteID int64  `json:"restaurante_id"`
	FechaReserva  string `json:"fecha_reserva"`
	Adultos       int    `json:"adultos"`
	Ninos         int    `json:"niños"`
	Trona         bool   `json:"trona"`
	Estado        string `json:"estado"`
}

func ToReservaDTO(r *reservation.Reservation) ReservaDTO {
	return ReservaDTO{
		ID:            r.ID,
		UsuarioID:     r.UsuarioID,
		RestauranteID: r.RestauranteID,
		FechaReserva:  r.FechaReserva.Format(time.RFC3339),
		Adultos:       r.Adultos,
		Ninos:         r.Ninos,
		Trona:         r.Trona,
		Estado:        r.Estado,
	}
}

type FavoritoDTO struct {
	ID             int64 `json:"id"`
	UsuarioID      int64 `json:"usuario_id"`
	RestaurantesID int64 `json:"restaurantes_id"`
}

func ToFavoritoDTO(f *favorite.Favorite) FavoritoDTO {
	return FavoritoDTO{
		ID:             f.ID,
		UsuarioID:      f.UsuarioID,
		RestaurantesID: f.RestaurantesID,
	}
}

type ValoracionDTO struct {
	ID            int64  `json:"id"`
	UsuarioID     int64  `json:"usuario_id"`
	RestauranteID int64  `json:"restaurante_id"`
	Puntuacion    int    `json:"puntuacion"`
	Comentario    string `json:"comentario"`
}

func ToValoracionDTO(v *rating.Rating) ValoracionDTO {
	return ValoracionDTO{
		ID:            v.ID,
		UsuarioID:     v.UsuarioID,
		RestauranteID: v.RestauranteID,
		Puntuacion:    v.Puntuacion,
		Comentario:    v.Comentario,
	}
}
