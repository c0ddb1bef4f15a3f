package response

import (
	"time"

	"cinema-chain/internal/data/entity"
)

type AnnouncementResponse struct {
	ID          string    `json:"id"`
	CinemaID    string    `json:"cinema_id"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	PublishedAt time.Time `json:"published_at"`
}

func AnnouncementToResponse(a *entity.Announcement) AnnouncementResponse {
	return AnnouncementResponse{
		ID:          a.ID.String(),
		CinemaID:    a.CinemaID.String(),
		Title:       a.Title,
		Content:     a.Content,
		PublishedAt: a.PublishedAt,
	}
}

func AnnouncementsToResponse(items []*entity.Announcement) []AnnouncementResponse {
	resp := make([]AnnouncementResponse, 0, len(items))
	for i := range items {
		resp = append(resp, AnnouncementToResponse(items[i]))
	}
	return resp
}
