package account

import (
	"context"
	"errors"
	"time"
)

var (
	ErrAccountNotFound = errors.New("account not found")
	ErrEmailTaken      = errors.New("account email already registered")
)

// Account is an end-user identity record.
type Account struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Nombres      string    `json:"nombres"`
	Apellidos    string    `json:"apellidos"`
	Telefono     string    `json:"telefono"`
	Creado       time.Time `json:"creado"`
}

type Repository interface {
	Save(ctx context.Context, a *Account) error
	FindByID(ctx context.Context, id int64) (*Account, error)
	FindByEmail(ctx context.Context, email string) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	Update(ctx context.Context, a *Account) error
	Delete(ctx context.Context, id int64) error
}
