package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"koperasi-loan-service/internal/domain/actor"
	"koperasi-loan-service/pkg/id"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "session:"

// RedisStore keeps bearer-token sessions in redis with a sliding TTL.
// It replaces what would otherwise be a process-wide token table, so it
// can be swapped out in tests.
type RedisStore struct {
	rdb *redis.Client
	ttl time.Duration
}

var _ actor.SessionStore = (*RedisStore)(nil)

func NewRedisStore(rdb *redis.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{rdb: rdb, ttl: ttl}
}

func (s *RedisStore) Issue(ctx context.Context, a actor.Actor) (string, error) {
	token := id.NewToken()
	payload, err := json.Marshal(a)
	if err != nil {
		return "", err
	}
	if err := s.rdb.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", fmt.Errorf("store session: %w", err)
	}
	return token, nil
}

func (s *RedisStore) Resolve(ctx context.Context, token string) (*actor.Actor, error) {
	raw, err := s.rdb.Get(ctx, keyPrefix+token).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, actor.ErrUnauthorized
	}
	if err != nil {
		return nil, fmt.Errorf("load session: %w", err)
	}
	var a actor.Actor
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, actor.ErrUnauthorized
	}
	// refresh the TTL on use
	_ = s.rdb.Expire(ctx, keyPrefix+token, s.ttl).Err()
	return &a, nil
}
