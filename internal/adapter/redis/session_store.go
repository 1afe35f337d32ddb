// Package redis stores live session ids in Redis so that a signed-out token
// is rejected by every instance.
package redis

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"bagpresto/internal/config/configs"
)

const (
	keyNamespace  = "bp"
	sessionPrefix = "session"
)

type cmdable interface {
	Ping(context.Context) *redis.StatusCmd
	Set(context.Context, string, any, time.Duration) *redis.StatusCmd
	Exists(context.Context, ...string) *redis.IntCmd
	Del(context.Context, ...string) *redis.IntCmd
}

// SessionStore implements port.SessionStore.
type SessionStore struct {
	store cmdable
	raw   *redis.Client
}

// New connects to Redis and verifies connectivity.
func New(ctx context.Context, cfg configs.Redis) (*SessionStore, error) {
	if cfg.URL == "" {
		return nil, errors.New("redis url is required")
	}
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	if cfg.DialTimeout > 0 {
		opts.DialTimeout = cfg.DialTimeout
	}
	if cfg.PoolSize > 0 {
		opts.PoolSize = cfg.PoolSize
	}
	raw := redis.NewClient(opts)
	if err = raw.Ping(ctx).Err(); err != nil {
		_ = raw.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}
	return &SessionStore{store: raw, raw: raw}, nil
}

// SessionKey returns the namespaced key of a session id.
func SessionKey(tokenID string) string {
	return strings.Join([]string{keyNamespace, sessionPrefix, tokenID}, ":")
}

func (s *SessionStore) SaveSession(ctx context.Context, tokenID string, userID uuid.UUID, ttl time.Duration) error {
	return s.store.Set(ctx, SessionKey(tokenID), userID.String(), ttl).Err()
}

func (s *SessionStore) HasSession(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.store.Exists(ctx, SessionKey(tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (s *SessionStore) DeleteSession(ctx context.Context, tokenID string) error {
	return s.store.Del(ctx, SessionKey(tokenID)).Err()
}

// Ping checks the connection.
func (s *SessionStore) Ping(ctx context.Context) error {
	return s.store.Ping(ctx).Err()
}

// Close releases the connection pool.
func (s *SessionStore) Close() error {
	if s.raw == nil {
		return nil
	}
	return s.raw.Close()
}
