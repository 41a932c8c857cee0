package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/lshigami/intervue/config"
	"github.com/lshigami/intervue/internal/apperror"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// RedisKV keeps lists in redis with RPUSH/LRANGE.
type RedisKV struct {
	rdb *goredis.Client
}

func NewRedisKV(cfg *config.Config) (*RedisKV, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Redis.Addr,
		Password:    cfg.Redis.Password,
		DB:          cfg.Redis.DB,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, apperror.Wrap(apperror.KindNetworkFailure, "Redis unavailable", fmt.Errorf("redis ping: %w", err))
	}

	log.Info().Str("addr", cfg.Redis.Addr).Int("db", cfg.Redis.DB).Msg("Connected to redis")
	return &RedisKV{rdb: rdb}, nil
}

func (r *RedisKV) Append(ctx context.Context, key string, value []byte) error {
	if err := r.rdb.RPush(ctx, key, value).Err(); err != nil {
		return apperror.Wrap(apperror.KindNetworkFailure, "Redis write failed", err)
	}
	return nil
}

func (r *RedisKV) Range(ctx context.Context, key string) ([][]byte, error) {
	values, err := r.rdb.LRange(ctx, key, 0, -1).Result()
	if err != nil {
		return nil, apperror.Wrap(apperror.KindNetworkFailure, "Redis read failed", err)
	}
	out := make([][]byte, 0, len(values))
	for _, v := range values {
		out = append(out, []byte(v))
	}
	return out, nil
}

func (r *RedisKV) Delete(ctx context.Context, key string) error {
	if err := r.rdb.Del(ctx, key).Err(); err != nil {
		return apperror.Wrap(apperror.KindNetworkFailure, "Redis delete failed", err)
	}
	return nil
}

func (r *RedisKV) Close() error {
	return r.rdb.Close()
}
