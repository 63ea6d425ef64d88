package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/addresses/cities/internal/db"
	"github.com/addresses/cities/internal/domain"

	"github.com/jmoiron/sqlx"
)

var _ Cities = (*cityRepository)(nil)

type cityRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

func newCityRepository(db *sqlx.DB) *cityRepository {
	return &cityRepository{
		db:  db,
		now: time.Now,
	}
}

func (r *cityRepository) Find(ctx context.Context, id int64) (*domain.City, error) {
	query := r.db.Rebind(`
	SELECT id, name, created_at, updated_at FROM city WHERE id = ?;
	`)
	var city domain.City
	if err := r.db.GetContext(ctx, &city, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("select from city by id failed: %w", err)
	}
	return &city, nil
}

func (r *cityRepository) Add(ctx context.Context, city *domain.City) (*domain.City, error) {
	if city == nil {
		return nil, domain.ErrNilEntity
	}

	saved := domain.City{
		Name:      city.Name,
		CreatedAt: r.now().UTC().Truncate(time.Second),
	}
	saved.UpdatedAt = saved.CreatedAt

	var err error
	if sqlx.BindType(r.db.DriverName()) == sqlx.DOLLAR {
		saved.ID, err = r.insertReturning(ctx, &saved)
	} else {
		saved.ID, err = r.insert(ctx, &saved)
	}
	if err != nil {
		if db.IsDuplicate(err) {
			return nil, domain.ErrDuplicateEntry
		}
		return nil, err
	}

	return &saved, nil
}

func (r *cityRepository) insert(ctx context.Context, city *domain.City) (int64, error) {
	const query = `
	INSERT INTO city (name, created_at, updated_at) VALUES (?, ?, ?);
	`
	result, err := r.db.ExecContext(ctx, query, city.Name, city.CreatedAt, city.UpdatedAt)
	if err != nil {
		return 0, fmt.Errorf("db insert city: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected failed: %w", err)
	}
	if rowsAffected == 0 {
		return 0, domain.ErrNoRowsAffected
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("last insert id failed: %w", err)
	}

	return id, nil
}

func (r *cityRepository) insertReturning(ctx context.Context, city *domain.City) (int64, error) {
	const query = `
	INSERT INTO city (name, created_at, updated_at) VALUES ($1, $2, $3) RETURNING id;
	`
	var id int64
	if err := r.db.QueryRowxContext(ctx, query, city.Name, city.CreatedAt, city.UpdatedAt).Scan(&id); err != nil {
		return 0, fmt.Errorf("db insert city: %w", err)
	}

	return id, nil
}
