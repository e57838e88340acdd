package account

import (
	"context"
	"time"

	"github.com/reservafacil/reserva-api/internal/domain/account"
	"github.com/reservafacil/reserva-api/pkg/auth"
	"github.com/reservafacil/reserva-api/pkg/logger"
)

type AccountUseCase struct {
	repo   account.Repository
	logger logger.Logger
}

func NewAccountUseCase(repo account.Repository, log logger.Logger) *AccountUseCase {
	return &AccountUseCase{repo: repo, logger: log}
}

type RegisterInput struct {
	Email     string
	Password  string
	Nombres   string
	Apellidos string
	Telefono  string
}

func (uc *AccountUseCase) Register(ctx context.Context, in RegisterInput) (*account.Account, error) {
	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	a := &account.Account{
		Email:        in.Email,
		PasswordHash: hash,
		Nombres:      in.Nombres,
		Apellidos:    in.Apellidos,
		Telefono:     in.Telefono,
		Creado:       time.Now().UTC(),
	}
	if err := uc.repo.Save(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *AccountUseCase) Get(ctx context.Context, id int64) (*account.Account, error) {
	return uc.repo.FindByID(ctx, id)
}

func (uc *AccountUseCase) List(ctx context.Context) ([]*account.Account, error) {
	return uc.repo.List(ctx)
}

type UpdateInput struct {
	ID        int64
	Email     *string
	Password  *string
	Nombres   *string
	Apellidos *string
	Telefono  *string
}

// Update overwrites only the provided fields. A new password is rehashed.
func (uc *AccountUseCase) Update(ctx context.Context, in UpdateInput) (*account.Account, error) {
	a, err := uc.repo.FindByID(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	if in.Email != nil {
		a.Email = *in.Email
	}
	if in.Nombres != nil {
		a.Nombres = *in.Nombres
	}
	if in.Apellidos != nil {
		a.Apellidos = *in.Apellidos
	}
	if in.Telefono != nil {
		a.Telefono = *in.Telefono
	}
	if in.Password != nil {
		hash, err := auth.HashPassword(*in.Password)
		if err != nil {
			return nil, err
		}
		a.PasswordHash = hash
	}

	if err := uc.repo.Update(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (uc *AccountUseCase) Delete(ctx context.Context, id int64) error {
	return uc.repo.Delete(ctx, id)
}
