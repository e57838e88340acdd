package favorite

import (
	"context"
	"errors"

	"github.com/reservafacil/reserva-api/internal/domain/favorite"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

type FavoriteUseCase struct {
	repo   favorite.Repository
	logger logger.Logger
}

func NewFavoriteUseCase(repo favorite.Repository, log logger.Logger) *FavoriteUseCase {
	return &FavoriteUseCase{repo: repo, logger: log}
}

// Add bookmarks a restaurant. A duplicate pair yields favorite.ErrDuplicate.
func (uc *FavoriteUseCase) Add(ctx context.Context, usuarioID, restaurantesID int64) (*favorite.Favorite, error) {
	existing, err := uc.repo.Find(ctx, usuarioID, restaurantesID)
	if err != nil && !errors.Is(err, favorite.ErrFavoriteNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, favorite.ErrDuplicate
	}

	f := &favorite.Favorite{UsuarioID: usuarioID, RestaurantesID: restaurantesID}
	if err := uc.repo.Save(ctx, f); err != nil {
		return nil, err
	}
	return f, nil
}

func (uc *FavoriteUseCase) Remove(ctx context.Context, usuarioID, restaurantesID int64) error {
	return uc.repo.Delete(ctx, usuarioID, restaurantesID)
}

func (uc *FavoriteUseCase) ListByUsuario(ctx context.Context, usuarioID int64) ([]*favorite.Favorite, error) {
	return uc.repo.ListByUsuario(ctx, usuarioID)
}
