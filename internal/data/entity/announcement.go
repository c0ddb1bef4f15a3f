package entity

import (
	"time"

	"github.com/google/uuid"
)

type Announcement struct {
	Base
	CinemaID    uuid.UUID `db:"cinema_id"`
	Title       string    `db:"title"`
	Content     string    `db:"content"`
	PublishedAt time.Time `db:"published_at"`
}
