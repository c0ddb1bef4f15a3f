package request

type AnnouncementRequest struct {
	CinemaID    string `json:"cinema_id" validate:"required,uuid"`
	Title       string `json:"title" validate:"required,min=1,max=200"`
	Content     string `json:"content" validate:"required,min=1,max=5000"`
	PublishedAt string `json:"published_at" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

type AnnouncementUpdateRequest struct {
	Title       *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Content     *string `json:"content,omitempty" validate:"omitempty,min=1,max=5000"`
	PublishedAt *string `json:"published_at,omitempty" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}
