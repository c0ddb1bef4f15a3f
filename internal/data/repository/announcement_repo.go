package repository

import (
	"context"
	"fmt"

	"cinema-chain/internal/data/entity"
	"cinema-chain/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *entity.Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error)
	FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Announcement, error)
	Update(ctx context.Context, announcement *entity.Announcement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type announcementRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewAnnouncementRepository(db database.PgxIface, log *zap.Logger) AnnouncementRepository {
	return &announcementRepository{
		db:  db,
		log: log.With(zap.String("repository", "announcement")),
	}
}

func (r *announcementRepository) Create(ctx context.Context, announcement *entity.Announcement) error {
	query := `
		INSERT INTO announcements (id, cinema_id, title, content, published_at, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.Exec(ctx, query,
		announcement.ID,
		announcement.CinemaID,
		announcement.Title,
		announcement.Content,
		announcement.PublishedAt,
		announcement.CreatedAt,
		announcement.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create announcement",
			zap.Error(err),
			zap.String("cinema_id", announcement.CinemaID.String()),
		)
		return fmt.Errorf("create announcement for cinema %s: %w", announcement.CinemaID.String(), err)
	}

	return nil
}

func (r *announcementRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Announcement, error) {
	query := `
		SELECT id, cinema_id, title, content, published_at, created_at, updated_at
		FROM announcements
		WHERE id = $1
	`

	var announcement entity.Announcement
	err := r.db.QueryRow(ctx, query, id).Scan(
		&announcement.ID,
		&announcement.CinemaID,
		&announcement.Title,
		&announcement.Content,
		&announcement.PublishedAt,
		&announcement.CreatedAt,
		&announcement.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find announcement by ID",
			zap.Error(err),
			zap.String("announcement_id", id.String()),
		)
		return nil, fmt.Errorf("find announcement by ID %s: %w", id.String(), err)
	}

	return &announcement, nil
}

func (r *announcementRepository) FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.Announcement, error) {
	query := `
		SELECT id, cinema_id, title, content, published_at, created_at, updated_at
		FROM announcements
		WHERE cinema_id = $1
		ORDER BY published_at DESC
	`

	rows, err := r.db.Query(ctx, query, cinemaID)
	if err != nil {
		r.log.Error("Failed to find announcements by cinema ID",
			zap.Error(err),
			zap.String("cinema_id", cinemaID.String()),
		)
		return nil, fmt.Errorf("find announcements by cinema ID %s: %w", cinemaID.String(), err)
	}
	defer rows.Close()

	var announcements []*entity.Announcement
	for rows.Next() {
		var announcement entity.Announcement
		err := rows.Scan(
			&announcement.ID,
			&announcement.CinemaID,
			&announcement.Title,
			&announcement.Content,
			&announcement.PublishedAt,
			&announcement.CreatedAt,
			&announcement.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan announcement row", zap.Error(err))
			return nil, fmt.Errorf("scan announcement row: %w", err)
		}
		announcements = append(announcements, &announcement)
	}

	return announcements, nil
}

func (r *announcementRepository) Update(ctx context.Context, announcement *entity.Announcement) error {
	query := `
		UPDATE announcements
		SET title = $2, content = $3, published_at = $4, updated_at = $5
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		announcement.ID,
		announcement.Title,
		announcement.Content,
		announcement.PublishedAt,
		announcement.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update announcement",
			zap.Error(err),
			zap.String("announcement_id", announcement.ID.String()),
		)
		return fmt.Errorf("update announcement %s: %w", announcement.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrAnnouncementNotFound
	}

	return nil
}

func (r *announcementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM announcements WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete announcement",
			zap.Error(err),
			zap.String("announcement_id", id.String()),
		)
		return fmt.Errorf("delete announcement %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return entity.ErrAnnouncementNotFound
	}

	r.log.Info("Announcement deleted", zap.String("announcement_id", id.String()))
	return nil
}
