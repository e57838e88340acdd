package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reservafacil/reserva-api/internal/domain/rating"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

type postgresRatingRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresRatingRepo(db *pgxpool.Pool, log logger.Logger) rating.Repository {
	return &postgresRatingRepo{db: db, logger: log}
}

func scanRating(row pgx.Row) (*rating.Rating, error) {
	v := &rating.Rating{}
	err := row.Scan(&v.ID, &v.UsuarioID, &v.RestauranteID, &v.Puntuacion, &v.Comentario)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, rating.ErrRatingNotFound
		}
		return nil, fmt.Errorf("failed to scan valoracion row: %w", err)
	}
	return v, nil
}

func (r *postgresRatingRepo) Save(ctx context.Context, v *rating.Rating) error {
	query := `
		INSERT INTO valoraciones (usuario_id, restaurante_id, puntuacion, comentario)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query, v.UsuarioID, v.RestauranteID, v.Puntuacion, v.Comentario).Scan(&v.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return rating.ErrDuplicate
		}
		return fmt.Errorf("failed to save valoracion: %w", err)
	}
	return nil
}

func (r *postgresRatingRepo) FindByUsuarioAndRestaurante(ctx context.Context, usuarioID, restauranteID int64) (*rating.Rating, error) {
	query := `
		SELECT id, usuario_id, restaurante_id, puntuacion, comentario
		FROM valoraciones
		WHERE usuario_id = $1 AND restaurante_id = $2
	`
	return scanRating(r.db.QueryRow(ctx, query, usuarioID, restauranteID))
}

func (r *postgresRatingRepo) ListByRestaurante(ctx context.Context, restauranteID int64) ([]*rating.Rating, error) {
	builder := psql.Select("id", "usuario_id", "restaurante_id", "puntuacion", "comentario").
		From("valoraciones").
		Where(sq.Eq{"restaurante_id": restauranteID}).
		OrderBy("id ASC")

	sql, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query valoraciones: %w", err)
	}
	defer rows.Close()

	ratings := make([]*rating.Rating, 0)
	for rows.Next() {
		v, err := scanRating(rows)
		if err != nil {
			return nil, err
		}
		ratings = append(ratings, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating valoracion rows: %w", err)
	}
	return ratings, nil
}

func (r *postgresRatingRepo) Update(ctx context.Context, v *rating.Rating) error {
	query := `
		UPDATE valoraciones SET puntuacion = $3, comentario = $4
		WHERE usuario_id = $1 AND restaurante_id = $2
	`
	cmdTag, err := r.db.Exec(ctx, query, v.UsuarioID, v.RestauranteID, v.Puntuacion, v.Comentario)
	if err != nil {
		return fmt.Errorf("failed to update valoracion: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return rating.ErrRatingNotFound
	}
	return nil
}

func (r *postgresRatingRepo) Delete(ctx context.Context, usuarioID, restauranteID int64) error {
	query := `DELETE FROM valoraciones WHERE usuario_id = $1 AND restaurante_id = $2`
	cmdTag, err := r.db.Exec(ctx, query, usuarioID, restauranteID)
	if err != nil {
		return fmt.Errorf("failed to delete valoracion: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return rating.ErrRatingNotFound
	}
	return nil
}

// AverageByRestaurante folds AVG and COUNT in one round trip. COALESCE keeps
// the scan happy when there are no rows.
func (r *postgresRatingRepo) AverageByRestaurante(ctx context.Context, restauranteID int64) (float64, int, error) {
	query := `
		SELECT COALESCE(AVG(puntuacion), 0), COUNT(*)
		FROM valoraciones
		WHERE restaurante_id = $1
	`
	var avg float64
	var count int
	if err := r.db.QueryRow(ctx, query, restauranteID).Scan(&avg, &count); err != nil {
		return 0, 0, fmt.Errorf("failed to average valoraciones: %w", err)
	}
	return avg, count, nil
}
