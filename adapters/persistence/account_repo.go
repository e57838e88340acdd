package persistence

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/reservafacil/reserva-api/internal/domain/account"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const pgUniqueViolation = "23505"

type postgresAccountRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresAccountRepo(db *pgxpool.Pool, log logger.Logger) account.Repository {
	return &postgresAccountRepo{db: db, logger: log}
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	a := &account.Account{}
	err := row.Scan(&a.ID, &a.Email, &a.PasswordHash, &a.Nombres, &a.Apellidos, &a.Telefono, &a.Creado)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, account.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to scan usuario row: %w", err)
	}
	return a, nil
}

func (r *postgresAccountRepo) Save(ctx context.Context, a *account.Account) error {
	query := `
		INSERT INTO usuarios (email, password_hash, nombres, apellidos, telefono, creado)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	err := r.db.QueryRow(ctx, query,
		a.Email, a.PasswordHash, a.Nombres, a.Apellidos, a.Telefono, a.Creado,
	).Scan(&a.ID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return account.ErrEmailTaken
		}
		return fmt.Errorf("failed to save usuario: %w", err)
	}
	return nil
}

func (r *postgresAccountRepo) FindByID(ctx context.Context, id int64) (*account.Account, error) {
	query := `
		SELECT id, email, password_hash, nombres, apellidos, telefono, creado
		FROM usuarios
		WHERE id = $1
	`
	return scanAccount(r.db.QueryRow(ctx, query, id))
}

func (r *postgresAccountRepo) FindByEmail(ctx context.Context, email string) (*account.Account, error) {
	query := `
		SELECT id, email, password_hash, nombres, apellidos, telefono, creado
		FROM usuarios
		WHERE email = $1
	`
	return scanAccount(r.db.QueryRow(ctx, query, email))
}

func (r *postgresAccountRepo) List(ctx context.Context) ([]*account.Account, error) {
	builder := psql.Select("id", "email", "password_hash", "nombres", "apellidos", "telefono", "creado").
		From("usuarios").
		OrderBy("id ASC")

	sql, args, _ := builder.ToSql()
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query usuarios: %w", err)
	}
	defer rows.Close()

	accounts := make([]*account.Account, 0)
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating usuario rows: %w", err)
	}
	return accounts, nil
}

func (r *postgresAccountRepo) Update(ctx context.Context, a *account.Account) error {
	query := `
		UPDATE usuarios SET
			email = $2, password_hash = $3, nombres = $4, apellidos = $5, telefono = $6
		WHERE id = $1
	`
	cmdTag, err := r.db.Exec(ctx, query, a.ID, a.Email, a.PasswordHash, a.Nombres, a.Apellidos, a.Telefono)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return account.ErrEmailTaken
		}
		return fmt.Errorf("failed to update usuario: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}

func (r *postgresAccountRepo) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM usuarios WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete usuario: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return account.ErrAccountNotFound
	}
	return nil
}
