package entity

import (
	"time"

	"github.com/google/uuid"
)

type Movie struct {
	Base
	Title             string    `db:"title"`
	Description       *string   `db:"description"`
	GenreID           uuid.UUID `db:"genre_id"`
	DurationInMinutes int       `db:"duration_in_minutes"`
	ReleaseDate       time.Time `db:"release_date"`
	PosterURL         *string   `db:"poster_url"`
}

// Duration is the screening window length used for overlap checks.
func (m *Movie) Duration() time.Duration {
	return time.Duration(m.DurationInMinutes) * time.Minute
}
