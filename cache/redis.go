package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"hackportal-backend/log"
)

type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

// DialRedis connects to addr and pings it once.
func DialRedis(ctx context.Context, addr string, ttl time.Duration) (*Redis, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		PoolSize: 100,
	})

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, cacheError(err)
	}

	log.Logger.Info("connected to redis", zap.String("addr", addr))
	return NewRedis(rdb, ttl), nil
}

func NewRedis(rdb *redis.Client, ttl time.Duration) *Redis {
	return &Redis{rdb: rdb, ttl: ttl}
}

func (r *Redis) Get(ctx context.Context, key string, dst interface{}) (bool, error) {
	data, err := r.rdb.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, cacheError(err)
	}

	if err := json.Unmarshal(data, dst); err != nil {
		return false, cacheError(err)
	}
	return true, nil
}

func (r *Redis) Set(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return cacheError(err)
	}
	if err := r.rdb.Set(ctx, key, data, r.ttl).Err(); err != nil {
		return cacheError(err)
	}
	return nil
}

func (r *Redis) Generation(ctx context.Context) (int64, error) {
	gen, err := r.rdb.Get(ctx, GenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, cacheError(err)
	}
	return gen, nil
}

// Invalidate bumps the generation first. Deleting the old keys only frees
// memory; readers already moved on to the new generation.
func (r *Redis) Invalidate(ctx context.Context) error {
	if err := r.rdb.Incr(ctx, GenerationKey).Err(); err != nil {
		return cacheError(err)
	}

	keys, err := r.rdb.Keys(ctx, Prefix+"*").Result()
	if err != nil {
		return cacheError(err)
	}
	if len(keys) == 0 {
		return nil
	}

	if err := r.rdb.Del(ctx, keys...).Err(); err != nil {
		return cacheError(err)
	}
	log.Logger.Debug("cleared cache keys", zap.Int("count", len(keys)))
	return nil
}

func (r *Redis) Close() error {
	return r.rdb.Close()
}
