package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/addresses/cities/internal/config"
)

const (
	RedisTypeSingle  = "redis"
	RedisTypeCluster = "redisCluster"
	pingTimeout      = time.Millisecond * 1500
)

// NewRedis connects to the redis deployment described by cfg and pings it.
func NewRedis(ctx context.Context, cfg config.Cache) (redis.UniversalClient, error) {
	var client redis.UniversalClient

	switch cfg.Type {
	case RedisTypeSingle:
		client = redis.NewClient(singleOptions(cfg))
	case RedisTypeCluster:
		client = redis.NewClusterClient(clusterOptions(cfg))
	default:
		return nil, fmt.Errorf("wrong redis type %q", cfg.Type)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}

	return client, nil
}

func singleOptions(cfg config.Cache) *redis.Options {
	return &redis.Options{
		Addr:            cfg.Redis.Address,
		Password:        cfg.Redis.Password,
		DB:              0,
		PoolSize:        cfg.Redis.PoolSize,
		ConnMaxIdleTime: 170 * time.Second,
		DialTimeout:     time.Second * 1,
		ReadTimeout:     time.Second * 1,
		WriteTimeout:    time.Second * 1,
	}
}

func clusterOptions(cfg config.Cache) *redis.ClusterOptions {
	return &redis.ClusterOptions{
		Addrs:           cfg.RedisCluster.Addresses,
		Password:        cfg.RedisCluster.Password,
		RouteRandomly:   false, // send read operations only to master nodes
		ReadOnly:        false,
		PoolSize:        cfg.RedisCluster.PoolSize,
		ConnMaxLifetime: 15 * time.Minute,
		DialTimeout:     time.Second * 1,
		ReadTimeout:     time.Second * 1,
		WriteTimeout:    time.Second * 1,
	}
}
