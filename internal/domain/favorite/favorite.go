package favorite

import (
	"context"
	"errors"
)

var (
	ErrFavoriteNotFound = errors.New("favorite not found")
	ErrDuplicate        = errors.New("restaurant already in favorites")
)

// Favorite bookmarks a restaurant for a user. The (usuario, restaurante) pair
// is unique.
type Favorite struct {
	ID             int64 `json:"id"`
	UsuarioID      int64 `json:"usuario_id"`
	RestaurantesID int64 `json:"restaurantes_id"`
}

type Repository interface {
	Save(ctx context.Context, f *Favorite) error
	Find(ctx context.Context, usuarioID, restaurantesID int64) (*Favorite, error)
	ListByUsuario(ctx context.Context, usuarioID int64) ([]*Favorite, error)
	Delete(ctx context.Context, usuarioID, restaurantesID int64) error
}
