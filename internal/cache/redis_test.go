package cache

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addresses/cities/internal/config"
)

func TestNewRedis(t *testing.T) {
	ctx := context.Background()

	t.Run("single", func(t *testing.T) {
		srv := miniredis.RunT(t)

		var cfg config.Cache
		cfg.Type = RedisTypeSingle
		cfg.Redis.Address = srv.Addr()
		cfg.Redis.PoolSize = 4

		client, err := NewRedis(ctx, cfg)
		require.NoError(t, err)
		t.Cleanup(func() { _ = client.Close() })

		require.NoError(t, client.Set(ctx, "k", "v", 0).Err())
		got, err := srv.Get("k")
		require.NoError(t, err)
		assert.Equal(t, "v", got)
	})

	t.Run("unreachable", func(t *testing.T) {
		srv := miniredis.RunT(t)
		addr := srv.Addr()
		srv.Close()

		var cfg config.Cache
		cfg.Type = RedisTypeSingle
		cfg.Redis.Address = addr

		_, err := NewRedis(ctx, cfg)
		assert.ErrorContains(t, err, "redis ping failed")
	})

	t.Run("wrong type", func(t *testing.T) {
		_, err := NewRedis(ctx, config.Cache{Type: "memcached"})
		assert.ErrorContains(t, err, "wrong redis type")
	})
}

func TestClusterOptions(t *testing.T) {
	var cfg config.Cache
	cfg.RedisCluster.Addresses = []string{"10.0.0.1:7000", "10.0.0.2:7001"}
	cfg.RedisCluster.PoolSize = 30

	opts := clusterOptions(cfg)
	assert.Equal(t, cfg.RedisCluster.Addresses, opts.Addrs)
	assert.Equal(t, 30, opts.PoolSize)
}
