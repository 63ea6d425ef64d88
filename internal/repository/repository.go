package repository

import (
	"context"
	"fmt"

	"github.com/addresses/cities/internal/config"
	"github.com/addresses/cities/internal/domain"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Repository is the storage access contract shared by all entity backends.
// Find returns domain.ErrNotFound when nothing is stored under key.
// Add assigns the key and returns the stored entity.
type Repository[E any, K comparable] interface {
	Find(ctx context.Context, key K) (*E, error)
	Add(ctx context.Context, entity *E) (*E, error)
}

type Cities = Repository[domain.City, int64]

type Repositories struct {
	Cities Cities
}

// Deps carries the opened storage clients; only the one matching Driver is used.
type Deps struct {
	Driver    string
	DB        *sqlx.DB
	Redis     redis.UniversalClient
	KeyPrefix string
}

func NewRepositories(deps Deps) (*Repositories, error) {
	var cities Cities

	switch deps.Driver {
	case config.StorageMySQL, config.StoragePostgres:
		if deps.DB == nil {
			return nil, fmt.Errorf("%s storage requires a database connection", deps.Driver)
		}
		cities = newCityRepository(deps.DB)
	case config.StorageRedis:
		if deps.Redis == nil {
			return nil, fmt.Errorf("%s storage requires a redis client", deps.Driver)
		}
		cities = newCityRedisRepository(deps.Redis, deps.KeyPrefix)
	case config.StorageMemory:
		cities = NewCityMemoryRepository()
	default:
		return nil, fmt.Errorf("unknown storage driver %q", deps.Driver)
	}

	return &Repositories{
		Cities: cities,
	}, nil
}
