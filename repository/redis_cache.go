package repository

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Las trayectorias dependen solo de (path, inicio, pasos, semilla), pero un
// TTL acotado evita que el cache crezca sin límite.
const trajectoryTTL = 24 * time.Hour

type RedisCache struct {
	client *redis.Client
	ctx    context.Context
}

func NewRedisCache(addr string) *RedisCache {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisCache{
		client: rdb,
		ctx:    context.Background(),
	}
}

func (r *RedisCache) Get(key string) (string, bool) {
	val, err := r.client.Get(r.ctx, key).Result()
	if err != nil {
		return "", false
	}
	return val, true
}

func (r *RedisCache) Set(key string, value string) error {
	return r.client.Set(r.ctx, key, value, trajectoryTTL).Err()
}
