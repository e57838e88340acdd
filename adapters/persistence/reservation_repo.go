package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reservafacil/reserva-api/internal/domain/reservation"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

type postgresReservationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresReservationRepo(db *pgxpool.Pool, log logger.Logger) reservation.Repository {
	return &postgresReservationRepo{db: db, logger: log}
}

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	r := &reservation.Reservation{}
	err := row.Scan(
		&r.ID, &r.UsuarioID, &r.RestauranteID, &r.FechaReserva,
		&r.Adultos, &r.Ninos, &r.Trona, &r.Estado,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, reservation.ErrReservationNotFound
		}
		return nil, fmt.Errorf("failed to scan reserva row: %w", err)
	}
	return r, nil
}

func (r *postgresReservationRepo) Save(ctx context.Context, res *reservation.Reservation) error {
	query := `
		INSERT INTO reservas (usuario_id, restaurante_id, fecha_reserva, adultos, ninos, trona, estado)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		res.UsuarioID, res.RestauranteID, res.FechaReserva,
		res.Adultos, res.Ninos, res.Trona, res.Estado,
	).Scan(&res.ID)
	if err != nil {
		return fmt.Errorf("failed to save reserva: %w", err)
	}
	return nil
}

func (r *postgresReservationRepo) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	query := `
		SELECT id, usuario_id, restaurante_id, fecha_reserva, adultos, ninos, trona, estado
		FROM reservas
		WHERE id = $1
	`
	return scanReservation(r.db.QueryRow(ctx, query, id))
}

func (r *postgresReservationRepo) ListByUsuario(ctx context.Context, usuarioID int64) ([]*reservation.Reservation, error) {
	builder := psql.Select("id", "usuario_id", "restaurante_id", "fecha_reserva", "adultos", "ninos", "trona", "estado").
		From("reservas").
		Where(sq.Eq{"usuario_id": usuarioID}).
		OrderBy("fecha_reserva DESC")

	sql, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query reservas: %w", err)
	}
	defer rows.Close()

	reservations := make([]*reservation.Reservation, 0)
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reserva rows: %w", err)
	}
	return reservations, nil
}

func (r *postgresReservationRepo) Update(ctx context.Context, res *reservation.Reservation) error {
	query := `
		UPDATE reservas SET fecha_reserva = $2, adultos = $3, ninos = $4
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, res.ID, res.FechaReserva, res.Adultos, res.Ninos)
	if err != nil {
		return fmt.Errorf("failed to update reserva: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return reservation.ErrReservationNotFound
	}
	return nil
}

// Cancel is a soft delete: the row stays, only the estado changes.
func (r *postgresReservationRepo) Cancel(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `UPDATE reservas SET estado = $2 WHERE id = $1`, id, reservation.EstadoCancelada)
	if err != nil {
		return fmt.Errorf("failed to cancel reserva: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return reservation.ErrReservationNotFound
	}
	return nil
}
