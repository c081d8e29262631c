package redissvc

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

type RedisService struct {
	rdb *redis.Client
}

// New creates a RedisService connected to the given address.
func New(addr, password string, db int) *RedisService {
	return NewRedisService(redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	}))
}

func NewRedisService(rdb *redis.Client) *RedisService {
	return &RedisService{rdb: rdb}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

// Ping checks the connection, giving up after five seconds.
func (s *RedisService) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.rdb.Ping(ctx).Err()
}

func (s *RedisService) Close() error {
	return s.rdb.Close()
}
