package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reservafacil/reserva-api/internal/domain/favorite"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

type postgresFavoriteRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresFavoriteRepo(db *pgxpool.Pool, log logger.Logger) favorite.Repository {
	return &postgresFavoriteRepo{db: db, logger: log}
}

func (r *postgresFavoriteRepo) Save(ctx context.Context, f *favorite.Favorite) error {
	query := `
		INSERT INTO restaurantes_favoritos (usuario_id, restaurantes_id)
		VALUES ($1, $2)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, f.UsuarioID, f.RestaurantesID).Scan(&f.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return favorite.ErrDuplicate
		}
		return fmt.Errorf("failed to save favorito: %w", err)
	}
	return nil
}

func (r *postgresFavoriteRepo) Find(ctx context.Context, usuarioID, restaurantesID int64) (*favorite.Favorite, error) {
	query := `
		SELECT id, usuario_id, restaurantes_id
		FROM restaurantes_favoritos
		WHERE usuario_id = $1 AND restaurantes_id = $2
	`
	f := &favorite.Favorite{}
	err := r.db.QueryRow(ctx, query, usuarioID, restaurantesID).Scan(&f.ID, &f.UsuarioID, &f.RestaurantesID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, favorite.ErrFavoriteNotFound
		}
		return nil, fmt.Errorf("failed to query favorito: %w", err)
	}
	return f, nil
}

func (r *postgresFavoriteRepo) ListByUsuario(ctx context.Context, usuarioID int64) ([]*favorite.Favorite, error) {
	builder := psql.Select("id", "usuario_id", "restaurantes_id").
		From("restaurantes_favoritos").
		Where(sq.Eq{"usuario_id": usuarioID}).
		OrderBy("id ASC")

	sql, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query favoritos: %w", err)
	}
	defer rows.Close()

	favorites := make([]*favorite.Favorite, 0)
	for rows.Next() {
		f := &favorite.Favorite{}
		if err := rows.Scan(&f.ID, &f.UsuarioID, &f.RestaurantesID); err != nil {
			return nil, fmt.Errorf("failed to scan favorito row: %w", err)
		}
		favorites = append(favorites, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating favorito rows: %w", err)
	}
	return favorites, nil
}

func (r *postgresFavoriteRepo) Delete(ctx context.Context, usuarioID, restaurantesID int64) error {
	query := `DELETE FROM restaurantes_favoritos WHERE usuario_id = $1 AND restaurantes_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, usuarioID, restaurantesID)
	if err != nil {
		return fmt.Errorf("failed to delete favorito: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return favorite.ErrFavoriteNotFound
	}
	return nil
}
