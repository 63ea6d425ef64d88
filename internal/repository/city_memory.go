package repository

import (
	"context"
	"sync"
	"time"

	"github.com/addresses/cities/internal/domain"
)

var _ Cities = (*CityMemoryRepository)(nil)

// CityMemoryRepository keeps cities in process memory. Keys start at 1.
type CityMemoryRepository struct {
	mu     sync.RWMutex
	cities map[int64]domain.City
	lastID int64
	now    func() time.Time
}

func NewCityMemoryRepository() *CityMemoryRepository {
	return &CityMemoryRepository{
		cities: make(map[int64]domain.City),
		now:    time.Now,
	}
}

func (r *CityMemoryRepository) Find(ctx context.Context, id int64) (*domain.City, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	city, ok := r.cities[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &city, nil
}

func (r *CityMemoryRepository) Add(ctx context.Context, city *domain.City) (*domain.City, error) {
	if city == nil {
		return nil, domain.ErrNilEntity
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	saved := domain.City{
		ID:        r.lastID,
		Name:      city.Name,
		CreatedAt: r.now().UTC(),
	}
	saved.UpdatedAt = saved.CreatedAt
	r.cities[saved.ID] = saved

	return &saved, nil
}
