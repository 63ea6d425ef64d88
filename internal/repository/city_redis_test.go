package repository

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/addresses/cities/internal/domain"
)

func newMiniredisRepository(t *testing.T) (*cityRedisRepository, *miniredis.Miniredis) {
	t.Helper()

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repo := newCityRedisRepository(client, "test")
	repo.now = func() time.Time { return fixedNow }

	return repo, srv
}

func TestCityRedisRepository(t *testing.T) {
	ctx := context.Background()
	repo, srv := newMiniredisRepository(t)

	_, err := repo.Find(ctx, 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	first, err := repo.Add(ctx, &domain.City{ID: 40, Name: "Springfield"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, fixedNow, first.CreatedAt)

	second, err := repo.Add(ctx, &domain.City{Name: "Shelbyville"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.ID)

	found, err := repo.Find(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Springfield", found.Name)
	assert.True(t, found.CreatedAt.Equal(fixedNow))

	assert.True(t, srv.Exists("test:city:1"))
	seq, err := srv.Get("test:city:seq")
	require.NoError(t, err)
	assert.Equal(t, "2", seq)
}

func TestCityRedisRepository_Errors(t *testing.T) {
	ctx := context.Background()

	t.Run("occupied key", func(t *testing.T) {
		repo, srv := newMiniredisRepository(t)
		require.NoError(t, srv.Set("test:city:1", `{"id":1,"name":"Springfield"}`))

		_, err := repo.Add(ctx, &domain.City{Name: "Shelbyville"})
		assert.ErrorIs(t, err, domain.ErrDuplicateEntry)
	})

	t.Run("corrupt payload", func(t *testing.T) {
		repo, srv := newMiniredisRepository(t)
		require.NoError(t, srv.Set("test:city:3", "{"))

		_, err := repo.Find(ctx, 3)
		assert.ErrorContains(t, err, "decode city 3")
	})

	t.Run("server down", func(t *testing.T) {
		repo, srv := newMiniredisRepository(t)
		srv.Close()

		_, err := repo.Find(ctx, 1)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("nil entity", func(t *testing.T) {
		repo, _ := newMiniredisRepository(t)

		_, err := repo.Add(ctx, nil)
		assert.ErrorIs(t, err, domain.ErrNilEntity)
	})
}

func TestNewRepositories(t *testing.T) {
	repos, err := NewRepositories(Deps{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &CityMemoryRepository{}, repos.Cities)

	_, err = NewRepositories(Deps{Driver: "mysql"})
	assert.Error(t, err)

	_, err = NewRepositories(Deps{Driver: "redis"})
	assert.Error(t, err)

	_, err = NewRepositories(Deps{Driver: "cassandra"})
	assert.ErrorContains(t, err, "unknown storage driver")

	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	repos, err = NewRepositories(Deps{Driver: "redis", Redis: client})
	require.NoError(t, err)
	assert.IsType(t, &cityRedisRepository{}, repos.Cities)
}
