// Package cache implementa el puerto de caché del dashboard sobre Redis.
package cache

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"github.com/tu-usuario/farmacia-suite/internal/application/analytics"
)

var _ analytics.Cache = (*RedisCache)(nil)

// RedisCache adaptador go-redis. Los fallos de Redis nunca rompen la request:
// un Get fallido es un miss y un Set fallido solo se loguea.
type RedisCache struct {
	client *redis.Client
}

// NewRedisCache construye el adaptador a partir de la URL de conexión.
func NewRedisCache(ctx context.Context, url string) (*RedisCache, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}
	return &RedisCache{client: client}, nil
}

// Get devuelve el valor cacheado o false si no existe o Redis no responde.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool) {
	raw, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return nil, false
	}
	return raw, true
}

// Set guarda el valor con TTL, best-effort.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) {
	if err := c.client.Set(ctx, key, value, ttl).Err(); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("No se pudo cachear en Redis")
	}
}

// Close cierra la conexión con Redis.
func (c *RedisCache) Close() error {
	return c.client.Close()
}
