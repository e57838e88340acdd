package rating

import (
	"context"
	"errors"
)

var (
	ErrRatingNotFound = errors.New("rating not found")
	ErrDuplicate      = errors.New("restaurant already rated by this user")
)

// Rating is a scored review. At most one rating per (usuario, restaurante).
type Rating struct {
	ID            int64  `json:"id"`
	UsuarioID     int64  `json:"usuario_id"`
	RestauranteID int64  `json:"restaurante_id"`
	Puntuacion    int    `json:"puntuacion"`
	Comentario    string `json:"comentario"`
}

type Repository interface {
	Save(ctx context.Context, r *Rating) error
	FindByUsuarioAndRestaurante(ctx context.Context, usuarioID, restauranteID int64) (*Rating, error)
	ListByRestaurante(ctx context.Context, restauranteID int64) ([]*Rating, error)
	Update(ctx context.Context, r *Rating) error
	Delete(ctx context.Context, usuarioID, restauranteID int64) error
	// AverageByRestaurante returns the mean score and the number of ratings.
	AverageByRestaurante(ctx context.Context, restauranteID int64) (float64, int, error)
}
