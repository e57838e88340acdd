package service

import (
	"context"
	"errors"
	"time"
)

var ErrTokenNotFound = errors.New("refresh token not found")

// RefreshTokenStore is the allow-list of issued refresh tokens, keyed by jti.
// Entries expire together with the token itself.
type RefreshTokenStore interface {
	Save(ctx context.Context, jti, subject string, ttl time.Duration) error
	Get(ctx context.Context, jti string) (string, error)
	Delete(ctx context.Context, jti string) error
}
