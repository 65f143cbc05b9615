package repository

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// InitRedis connects the memo-list cache backend. Callers treat a failed
// connection as "no cache", never as a fatal error.
func InitRedis(addr string, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		return nil, fmt.Errorf("redis unreachable at %s: %w", addr, err)
	}

	return rdb, nil
}
