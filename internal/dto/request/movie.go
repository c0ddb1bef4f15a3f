package request

type MovieRequest struct {
	Title             string  `json:"title" validate:"required,min=1,max=200"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	GenreID           string  `json:"genre_id" validate:"required,uuid"`
	DurationInMinutes int     `json:"duration_in_minutes" validate:"required,gt=0"`
	ReleaseDate       string  `json:"release_date" validate:"required,datetime=2006-01-02"`
	PosterURL         *string `json:"poster_url,omitempty" validate:"omitempty,url"`
}

type MovieUpdateRequest struct {
	Title             *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Description       *string `json:"description,omitempty" validate:"omitempty,max=2000"`
	GenreID           *string `json:"genre_id,omitempty" validate:"omitempty,uuid"`
	DurationInMinutes *int    `json:"duration_in_minutes,omitempty" validate:"omitempty,gt=0"`
	ReleaseDate       *string `json:"release_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	PosterURL         *string `json:"poster_url,omitempty" validate:"omitempty,url"`
}

type GenreRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
