package kv

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/magabrotheeeer/streamora/internal/config"
)

// Redis реализует Store поверх Redis. Значения хранятся без TTL:
// это первичное хранилище коллекций, а не кеш.
type Redis struct {
	Db *redis.Client
}

// InitServer подключается к Redis и проверяет соединение.
func InitServer(ctx context.Context, cfg config.RedisConnection) (*Redis, error) {
	const op = "kv.InitServer"
	db := redis.NewClient(&redis.Options{
		Addr:         cfg.AddressRedis,
		Password:     cfg.Password,
		DB:           cfg.DB,
		Username:     cfg.User,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.TimeoutRedis,
		WriteTimeout: cfg.TimeoutRedis,
	})

	if err := db.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Redis{Db: db}, nil
}

// Get возвращает значение по ключу, redis.Nil трактуется как отсутствие.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, bool, error) {
	const op = "kv.Get"
	val, err := r.Db.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}
	return val, true, nil
}

// Set сохраняет значение без срока жизни.
func (r *Redis) Set(ctx context.Context, key string, value []byte) error {
	const op = "kv.Set"
	if err := r.Db.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Del удаляет значение по ключу.
func (r *Redis) Del(ctx context.Context, key string) error {
	const op = "kv.Del"
	if err := r.Db.Del(ctx, key).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
