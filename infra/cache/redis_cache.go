package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"github.com/amirasaad/pocketpilot/pkg/domain/voice"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps voice dialogue sessions in Redis as JSON values.
type RedisSessionStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
	logger *slog.Logger
}

// NewRedisSessionStore creates a store from a redis:// URL.
func NewRedisSessionStore(
	url string,
	opts func(*redis.Options),
	prefix string,
	ttl time.Duration,
	logger *slog.Logger,
) (*RedisSessionStore, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if opts != nil {
		opts(opt)
	}
	return NewRedisSessionStoreWithClient(redis.NewClient(opt), prefix, ttl, logger), nil
}

// NewRedisSessionStoreWithClient wraps an existing client.
func NewRedisSessionStoreWithClient(
	client *redis.Client,
	prefix string,
	ttl time.Duration,
	logger *slog.Logger,
) *RedisSessionStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisSessionStore{client: client, prefix: prefix, ttl: ttl, logger: logger}
}

func (r *RedisSessionStore) key(userID uuid.UUID) string {
	return r.prefix + userID.String()
}

// Ping checks connectivity.
func (r *RedisSessionStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the client.
func (r *RedisSessionStore) Close() error {
	return r.client.Close()
}

// Get returns the session, or nil on a cache miss.
func (r *RedisSessionStore) Get(ctx context.Context, userID uuid.UUID) (*voice.Session, error) {
	val, err := r.client.Get(ctx, r.key(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		r.logger.Debug("Redis session miss", "user_id", userID)
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Redis session get error", "user_id", userID, "error", err)
		return nil, err
	}
	var s voice.Session
	if err := json.Unmarshal(val, &s); err != nil {
		r.logger.Error("Redis session unmarshal error", "user_id", userID, "error", err)
		return nil, err
	}
	return &s, nil
}

// Save stores the session and refreshes its TTL.
func (r *RedisSessionStore) Save(ctx context.Context, userID uuid.UUID, s voice.Session) error {
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, r.key(userID), data, r.ttl).Err(); err != nil {
		r.logger.Error("Redis session set error", "user_id", userID, "error", err)
		return err
	}
	r.logger.Debug("Redis session saved", "user_id", userID, "stage", s.Stage, "ttl", r.ttl)
	return nil
}

// Delete removes the session.
func (r *RedisSessionStore) Delete(ctx context.Context, userID uuid.UUID) error {
	if err := r.client.Del(ctx, r.key(userID)).Err(); err != nil {
		r.logger.Error("Redis session delete error", "user_id", userID, "error", err)
		return err
	}
	return nil
}
