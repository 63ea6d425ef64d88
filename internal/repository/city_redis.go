package repository

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/addresses/cities/internal/domain"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

var _ Cities = (*cityRedisRepository)(nil)

// cityRedisRepository stores each city as a JSON string under <prefix>:city:<id>
// and allocates ids from the <prefix>:city:seq counter.
type cityRedisRepository struct {
	client redis.UniversalClient
	prefix string
	now    func() time.Time
}

func newCityRedisRepository(client redis.UniversalClient, prefix string) *cityRedisRepository {
	if prefix == "" {
		prefix = "addresses"
	}
	return &cityRedisRepository{
		client: client,
		prefix: prefix,
		now:    time.Now,
	}
}

func (r *cityRedisRepository) cityKey(id int64) string {
	return r.prefix + ":city:" + strconv.FormatInt(id, 10)
}

func (r *cityRedisRepository) seqKey() string {
	return r.prefix + ":city:seq"
}

func (r *cityRedisRepository) Find(ctx context.Context, id int64) (*domain.City, error) {
	raw, err := r.client.Get(ctx, r.cityKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrNotFound
		}
		return nil, errors.Wrap(err, "redis get city")
	}

	var city domain.City
	if err := json.Unmarshal(raw, &city); err != nil {
		return nil, errors.Wrapf(err, "decode city %d", id)
	}
	return &city, nil
}

func (r *cityRedisRepository) Add(ctx context.Context, city *domain.City) (*domain.City, error) {
	if city == nil {
		return nil, domain.ErrNilEntity
	}

	id, err := r.client.Incr(ctx, r.seqKey()).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis allocate city id")
	}

	saved := domain.City{
		ID:        id,
		Name:      city.Name,
		CreatedAt: r.now().UTC(),
	}
	saved.UpdatedAt = saved.CreatedAt

	payload, err := json.Marshal(saved)
	if err != nil {
		return nil, errors.Wrap(err, "encode city")
	}

	ok, err := r.client.SetNX(ctx, r.cityKey(id), payload, 0).Result()
	if err != nil {
		return nil, errors.Wrap(err, "redis set city")
	}
	if !ok {
		return nil, domain.ErrDuplicateEntry
	}

	return &saved, nil
}
