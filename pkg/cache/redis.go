package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "salesdash:report:"

// redisStore backs the report cache with Redis so several dashboard
// instances can share one warm cache.
type redisStore struct {
	rdb *redis.Client
	ctx context.Context
}

func newRedisStore(addr, password string) (*redisStore, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       0,
	})

	ctx := context.Background()
	if err := rdb.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("cache: redis ping: %w", err)
	}

	return &redisStore{rdb: rdb, ctx: ctx}, nil
}

func (s *redisStore) Get(key string, dest interface{}) bool {
	val, err := s.rdb.Get(s.ctx, redisKeyPrefix+key).Result()
	if err != nil {
		observe(s.Driver(), false)
		return false
	}

	if err := json.Unmarshal([]byte(val), dest); err != nil {
		observe(s.Driver(), false)
		return false
	}

	observe(s.Driver(), true)
	return true
}

func (s *redisStore) Set(key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.rdb.Set(s.ctx, redisKeyPrefix+key, data, ttl).Err()
}

func (s *redisStore) Flush() error {
	iter := s.rdb.Scan(s.ctx, 0, redisKeyPrefix+"*", 0).Iterator()
	for iter.Next(s.ctx) {
		if err := s.rdb.Del(s.ctx, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (s *redisStore) Driver() string { return "redis" }
