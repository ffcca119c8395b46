package revocation

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "revoked:"

// RedisStore keeps revoked tokens in Redis, relying on per-key TTL for
// expiry. No in-process timers are involved.
type RedisStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewRedisStore creates a denylist with the given retention, which should
// match the session token lifetime.
func NewRedisStore(rdb *goredis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Revoke(ctx context.Context, token string) error {
	if err := s.rdb.Set(ctx, keyPrefix+token, 1, s.ttl).Err(); err != nil {
		return fmt.Errorf("error revoking token: %w", err)
	}
	return nil
}

func (s *RedisStore) IsRevoked(ctx context.Context, token string) (bool, error) {
	n, err := s.rdb.Exists(ctx, keyPrefix+token).Result()
	if err != nil {
		return false, fmt.Errorf("error checking token: %w", err)
	}
	return n > 0, nil
}
