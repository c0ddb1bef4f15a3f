package usecase

import (
	"context"
	"testing"
	"time"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memMovies struct {
	movies map[uuid.UUID]*entity.Movie
}

func (m *memMovies) Create(ctx context.Context, movie *entity.Movie) error {
	m.movies[movie.ID] = movie
	return nil
}

func (m *memMovies) FindByID(ctx context.Context, id uuid.UUID) (*entity.Movie, error) {
	return m.movies[id], nil
}

func (m *memMovies) FindAll(ctx context.Context, limit, offset int, genreID *uuid.UUID) ([]*entity.Movie, error) {
	var out []*entity.Movie
	for _, movie := range m.movies {
		out = append(out, movie)
	}
	return out, nil
}

func (m *memMovies) CountAll(ctx context.Context, genreID *uuid.UUID) (int64, error) {
	return int64(len(m.movies)), nil
}

func (m *memMovies) Update(ctx context.Context, movie *entity.Movie) error {
	m.movies[movie.ID] = movie
	return nil
}

func (m *memMovies) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.movies, id)
	return nil
}

type memRooms struct {
	rooms         map[uuid.UUID]*entity.ScreeningRoom
	hasScreenings bool
}

func (m *memRooms) Create(ctx context.Context, room *entity.ScreeningRoom) error {
	m.rooms[room.ID] = room
	return nil
}

func (m *memRooms) FindByID(ctx context.Context, id uuid.UUID) (*entity.ScreeningRoom, error) {
	return m.rooms[id], nil
}

func (m *memRooms) FindByCinemaID(ctx context.Context, cinemaID uuid.UUID) ([]*entity.ScreeningRoom, error) {
	var out []*entity.ScreeningRoom
	for _, room := range m.rooms {
		if room.CinemaID == cinemaID {
			out = append(out, room)
		}
	}
	return out, nil
}

func (m *memRooms) HasScreenings(ctx context.Context, roomID uuid.UUID) (bool, error) {
	return m.hasScreenings, nil
}

func (m *memRooms) Update(ctx context.Context, room *entity.ScreeningRoom) error {
	m.rooms[room.ID] = room
	return nil
}

func (m *memRooms) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.rooms, id)
	return nil
}

type memScreenings struct {
	screenings map[uuid.UUID]*entity.Screening
	movies     *memMovies
}

func (m *memScreenings) Create(ctx context.Context, screening *entity.Screening) error {
	m.screenings[screening.ID] = screening
	return nil
}

func (m *memScreenings) FindByID(ctx context.Context, id uuid.UUID) (*entity.Screening, error) {
	s, ok := m.screenings[id]
	if !ok {
		return nil, nil
	}
	// Return a copy so callers mutating the entity don't alias the stored
	// record, matching the row-scanning behavior of the real repository.
	cp := *s
	return &cp, nil
}

func (m *memScreenings) FindByMovieID(ctx context.Context, movieID uuid.UUID) ([]*entity.Screening, error) {
	var out []*entity.Screening
	for _, s := range m.screenings {
		if s.MovieID == movieID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memScreenings) FindByRoomID(ctx context.Context, roomID uuid.UUID) ([]*entity.Screening, error) {
	var out []*entity.Screening
	for _, s := range m.screenings {
		if s.RoomID == roomID {
			out = append(out, s)
		}
	}
	return out, nil
}

func (m *memScreenings) FindUpcoming(ctx context.Context, limit, offset int) ([]*entity.Screening, error) {
	var out []*entity.Screening
	for _, s := range m.screenings {
		out = append(out, s)
	}
	return out, nil
}

func (m *memScreenings) CountUpcoming(ctx context.Context) (int64, error) {
	return int64(len(m.screenings)), nil
}

func (m *memScreenings) HasOverlap(ctx context.Context, roomID uuid.UUID, start, end time.Time, excludeID uuid.UUID) (bool, error) {
	window := end.Sub(start)
	for _, s := range m.screenings {
		if s.RoomID != roomID || s.ID == excludeID {
			continue
		}
		movie := m.movies.movies[s.MovieID]
		probe := &entity.Screening{StartTime: start}
		if probe.Overlaps(window, s.StartTime, movie.Duration()) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memScreenings) Update(ctx context.Context, screening *entity.Screening) error {
	m.screenings[screening.ID] = screening
	return nil
}

func (m *memScreenings) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.screenings, id)
	return nil
}

type screeningFixture struct {
	svc     ScreeningService
	movieID uuid.UUID
	roomID  uuid.UUID
}

func newScreeningFixture(t *testing.T, roomSeats, movieMinutes int) *screeningFixture {
	t.Helper()

	movies := &memMovies{movies: make(map[uuid.UUID]*entity.Movie)}
	rooms := &memRooms{rooms: make(map[uuid.UUID]*entity.ScreeningRoom)}
	screenings := &memScreenings{
		screenings: make(map[uuid.UUID]*entity.Screening),
		movies:     movies,
	}
	store := newMemInventory()

	movie := &entity.Movie{Title: "Arrival", DurationInMinutes: movieMinutes}
	movie.ID = uuid.New()
	movies.movies[movie.ID] = movie

	room := &entity.ScreeningRoom{CinemaID: uuid.New(), Name: "Room 1", TotalSeats: roomSeats}
	room.ID = uuid.New()
	rooms.rooms[room.ID] = room

	repo := &repository.Repository{
		Movie:       movies,
		Room:        rooms,
		Screening:   screenings,
		Reservation: &memReservations{store: store},
	}

	return &screeningFixture{
		svc:     NewScreeningService(repo, zap.NewNop()),
		movieID: movie.ID,
		roomID:  room.ID,
	}
}

func screeningReq(f *screeningFixture, start time.Time) *request.ScreeningRequest {
	return &request.ScreeningRequest{
		MovieID:   f.movieID.String(),
		RoomID:    f.roomID.String(),
		StartTime: start.Format(time.RFC3339),
	}
}

func TestCreateScreeningSeedsRemainingSeats(t *testing.T) {
	f := newScreeningFixture(t, 120, 100)

	created, err := f.svc.CreateScreening(context.Background(), screeningReq(f, time.Now().Add(24*time.Hour)))
	require.NoError(t, err)
	assert.Equal(t, 120, created.RemainingSeats)
	assert.Equal(t, f.movieID.String(), created.MovieID)
	assert.Equal(t, f.roomID.String(), created.RoomID)
}

func TestCreateScreeningRejectsOverlap(t *testing.T) {
	f := newScreeningFixture(t, 50, 120)
	start := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)

	_, err := f.svc.CreateScreening(context.Background(), screeningReq(f, start))
	require.NoError(t, err)

	// Starts an hour into the 2h window.
	_, err = f.svc.CreateScreening(context.Background(), screeningReq(f, start.Add(time.Hour)))
	assert.ErrorIs(t, err, entity.ErrScreeningOverlap)

	// Ends exactly at the existing start: half-open windows, allowed.
	_, err = f.svc.CreateScreening(context.Background(), screeningReq(f, start.Add(-2*time.Hour)))
	require.NoError(t, err)

	// Starts exactly at the existing end: allowed.
	_, err = f.svc.CreateScreening(context.Background(), screeningReq(f, start.Add(2*time.Hour)))
	require.NoError(t, err)
}

func TestCreateScreeningUnknownRefs(t *testing.T) {
	f := newScreeningFixture(t, 50, 90)
	start := time.Now().Add(time.Hour)

	req := screeningReq(f, start)
	req.MovieID = uuid.New().String()
	_, err := f.svc.CreateScreening(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrMovieNotFound)

	req = screeningReq(f, start)
	req.RoomID = uuid.New().String()
	_, err = f.svc.CreateScreening(context.Background(), req)
	assert.ErrorIs(t, err, entity.ErrRoomNotFound)
}

func TestUpdateScreeningChecksOverlapAgainstOthers(t *testing.T) {
	f := newScreeningFixture(t, 50, 60)
	start := time.Date(2026, 9, 2, 12, 0, 0, 0, time.UTC)

	first, err := f.svc.CreateScreening(context.Background(), screeningReq(f, start))
	require.NoError(t, err)

	second, err := f.svc.CreateScreening(context.Background(), screeningReq(f, start.Add(3*time.Hour)))
	require.NoError(t, err)

	// Moving the second onto the first collides.
	newStart := start.Add(30 * time.Minute).Format(time.RFC3339)
	_, err = f.svc.UpdateScreening(context.Background(), second.ID, &request.ScreeningUpdateRequest{
		StartTime: &newStart,
	})
	assert.ErrorIs(t, err, entity.ErrScreeningOverlap)

	// Rescheduling a screening over its own slot is fine.
	ownStart := start.Format(time.RFC3339)
	_, err = f.svc.UpdateScreening(context.Background(), first.ID, &request.ScreeningUpdateRequest{
		StartTime: &ownStart,
	})
	require.NoError(t, err)
}
