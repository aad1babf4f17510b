// Package redis holds the ephemeral stores backed by Redis. The only one so
// far is the password-reset token store: tokens are single-use and time-bound,
// which maps directly onto SET-with-TTL and GETDEL.
package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ndtrung/warehouse-backoffice/internal/application/auth"
	"github.com/ndtrung/warehouse-backoffice/pkg/config"
)

var _ auth.ResetTokenStore = (*ResetTokenStore)(nil)

const resetKeyPrefix = "reset-token:"

// ResetTokenStore stores password-reset tokens with a TTL.
type ResetTokenStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewResetTokenStore connects the client and verifies the server is reachable.
func NewResetTokenStore(ctx context.Context, cfg config.RedisConfig) (*ResetTokenStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &ResetTokenStore{
		client: client,
		ttl:    time.Duration(cfg.ResetTokenTTLMinutes) * time.Minute,
	}, nil
}

// Save stores token -> userID for the configured TTL.
func (s *ResetTokenStore) Save(ctx context.Context, token, userID string) error {
	if err := s.client.Set(ctx, resetKeyPrefix+token, userID, s.ttl).Err(); err != nil {
		return fmt.Errorf("save reset token: %w", err)
	}
	return nil
}

// Redeem atomically consumes the token and returns the user id it was issued
// for. ("", nil) when the token is unknown, expired or already consumed —
// GETDEL guarantees a token redeems at most once.
func (s *ResetTokenStore) Redeem(ctx context.Context, token string) (string, error) {
	userID, err := s.client.GetDel(ctx, resetKeyPrefix+token).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("redeem reset token: %w", err)
	}
	return userID, nil
}

// Close releases the client.
func (s *ResetTokenStore) Close() error { return s.client.Close() }
