package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/reservafacil/reserva-api/internal/application/service"
)

const refreshTokenKeyPrefix = "refresh_token:"

type redisTokenStore struct {
	rdb *redis.Client
}

func NewRedisTokenStore(rdb *redis.Client) service.RefreshTokenStore {
	return &redisTokenStore{rdb: rdb}
}

func (s *redisTokenStore) Save(ctx context.Context, jti, subject string, ttl time.Duration) error {
	if err := s.rdb.Set(ctx, refreshTokenKeyPrefix+jti, subject, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store refresh token: %w", err)
	}
	return nil
}

func (s *redisTokenStore) Get(ctx context.Context, jti string) (string, error) {
	subject, err := s.rdb.Get(ctx, refreshTokenKeyPrefix+jti).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", service.ErrTokenNotFound
		}
		return "", fmt.Errorf("failed to read refresh token: %w", err)
	}
	return subject, nil
}

func (s *redisTokenStore) Delete(ctx context.Context, jti string) error {
	if err := s.rdb.Del(ctx, refreshTokenKeyPrefix+jti).Err(); err != nil {
		return fmt.Errorf("failed to delete refresh token: %w", err)
	}
	return nil
}
