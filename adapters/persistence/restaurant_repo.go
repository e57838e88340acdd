package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reservafacil/reserva-api/internal/domain/restaurant"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

const restaurantColumns = `id, nombre, email, password_hash, direccion, latitud, longitud, telefono,
		cubiertos, cantidad_mesas, franja_horaria, reservas_por_dia, categorias_id, valoracion, image`

type postgresRestaurantRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresRestaurantRepo(db *pgxpool.Pool, log logger.Logger) restaurant.Repository {
	return &postgresRestaurantRepo{db: db, logger: log}
}

func scanRestaurant(row pgx.Row) (*restaurant.Restaurant, error) {
	r := &restaurant.Restaurant{}
	err := row.Scan(
		&r.ID, &r.Nombre, &r.Email, &r.PasswordHash, &r.Direccion, &r.Latitud, &r.Longitud,
		&r.Telefono, &r.Cubiertos, &r.CantidadMesas, &r.FranjaHoraria, &r.ReservasPorDia,
		&r.CategoriasID, &r.Valoracion, &r.Image,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, restaurant.ErrRestaurantNotFound
		}
		return nil, fmt.Errorf("failed to scan restaurante row: %w", err)
	}
	return r, nil
}

func insertRestaurant(ctx context.Context, q interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}, r *restaurant.Restaurant) error {
	query := `
		INSERT INTO restaurantes (nombre, email, password_hash, direccion, latitud, longitud, telefono,
			cubiertos, cantidad_mesas, franja_horaria, reservas_por_dia, categorias_id, valoracion, image)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING id
	`
	err := q.QueryRow(ctx, query,
		r.Nombre, r.Email, r.PasswordHash, r.Direccion, r.Latitud, r.Longitud, r.Telefono,
		r.Cubiertos, r.CantidadMesas, r.FranjaHoraria, r.ReservasPorDia, r.CategoriasID,
		r.Valoracion, r.Image,
	).Scan(&r.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return restaurant.ErrEmailTaken
		}
		return fmt.Errorf("failed to save restaurante: %w", err)
	}
	return nil
}

func (r *postgresRestaurantRepo) Save(ctx context.Context, rest *restaurant.Restaurant) error {
	return insertRestaurant(ctx, r.db, rest)
}

func (r *postgresRestaurantRepo) FindByID(ctx context.Context, id int64) (*restaurant.Restaurant, error) {
	query := fmt.Sprintf(`SELECT %s FROM restaurantes WHERE id = $1`, restaurantColumns)
	return scanRestaurant(r.db.QueryRow(ctx, query, id))
}

func (r *postgresRestaurantRepo) FindByEmail(ctx context.Context, email string) (*restaurant.Restaurant, error) {
	query := fmt.Sprintf(`SELECT %s FROM restaurantes WHERE email = $1`, restaurantColumns)
	return scanRestaurant(r.db.QueryRow(ctx, query, email))
}

func (r *postgresRestaurantRepo) List(ctx context.Context) ([]*restaurant.Restaurant, error) {
	builder := psql.Select(restaurantColumns).
		From("restaurantes").
		OrderBy("id ASC")

	sql, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query restaurantes: %w", err)
	}
	defer rows.Close()

	restaurants := make([]*restaurant.Restaurant, 0)
	for rows.Next() {
		rest, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		restaurants = append(restaurants, rest)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating restaurante rows: %w", err)
	}
	return restaurants, nil
}

func (r *postgresRestaurantRepo) Update(ctx context.Context, rest *restaurant.Restaurant) error {
	query := `
		UPDATE restaurantes SET
			nombre = $2, email = $3, password_hash = $4, direccion = $5, latitud = $6, longitud = $7,
			telefono = $8, cubiertos = $9, cantidad_mesas = $10, franja_horaria = $11,
			reservas_por_dia = $12, categorias_id = $13, valoracion = $14, image = $15
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query,
		rest.ID, rest.Nombre, rest.Email, rest.PasswordHash, rest.Direccion, rest.Latitud,
		rest.Longitud, rest.Telefono, rest.Cubiertos, rest.CantidadMesas, rest.FranjaHoraria,
		rest.ReservasPorDia, rest.CategoriasID, rest.Valoracion, rest.Image,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return restaurant.ErrEmailTaken
		}
		return fmt.Errorf("failed to update restaurante: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return restaurant.ErrRestaurantNotFound
	}
	return nil
}

func (r *postgresRestaurantRepo) UpdateValoracion(ctx context.Context, id int64, valoracion float64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE restaurantes SET valoracion = $2 WHERE id = $1`, id, valoracion)
	if err != nil {
		return fmt.Errorf("failed to update restaurante valoracion: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return restaurant.ErrRestaurantNotFound
	}
	return nil
}

func (r *postgresRestaurantRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM restaurantes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete restaurante: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return restaurant.ErrRestaurantNotFound
	}
	return nil
}

// SaveAll inserts the whole batch inside one transaction. The first failure
// rolls back every previous insert.
func (r *postgresRestaurantRepo) SaveAll(ctx context.Context, rs []*restaurant.Restaurant) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	for _, rest := range rs {
		if err := insertRestaurant(ctx, tx, rest); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit seed transaction: %w", err)
	}
	return nil
}
