package domain

import (
	"time"
)

type City struct {
	ID        int64     `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// Key returns the repository key of the city.
func (c City) Key() int64 {
	return c.ID
}
