package usecase

import (
	"context"
	"testing"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memCinemas struct {
	cinemas map[uuid.UUID]*entity.Cinema
}

func (m *memCinemas) Create(ctx context.Context, cinema *entity.Cinema) error {
	m.cinemas[cinema.ID] = cinema
	return nil
}

func (m *memCinemas) FindByID(ctx context.Context, id uuid.UUID) (*entity.Cinema, error) {
	return m.cinemas[id], nil
}

func (m *memCinemas) FindAll(ctx context.Context, limit, offset int, cityFilter *string) ([]*entity.Cinema, error) {
	var out []*entity.Cinema
	for _, c := range m.cinemas {
		if cityFilter == nil || c.City == *cityFilter {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCinemas) CountAll(ctx context.Context, cityFilter *string) (int64, error) {
	cs, _ := m.FindAll(ctx, 0, 0, cityFilter)
	return int64(len(cs)), nil
}

func (m *memCinemas) Update(ctx context.Context, cinema *entity.Cinema) error {
	m.cinemas[cinema.ID] = cinema
	return nil
}

func (m *memCinemas) Delete(ctx context.Context, id uuid.UUID) error {
	delete(m.cinemas, id)
	return nil
}

func newCinemaFixture() (CinemaService, *memCinemas, *memRooms) {
	cinemas := &memCinemas{cinemas: make(map[uuid.UUID]*entity.Cinema)}
	rooms := &memRooms{rooms: make(map[uuid.UUID]*entity.ScreeningRoom)}
	repo := &repository.Repository{Cinema: cinemas, Room: rooms}

	return NewCinemaService(repo, zap.NewNop()), cinemas, rooms
}

func cinemaReq() *request.CinemaRequest {
	return &request.CinemaRequest{
		Name:    "Grand Central",
		Address: "1 Main St",
		City:    "Lisbon",
		ZipCode: "1000-001",
		Email:   "grand@example.com",
	}
}

func TestCreateAndGetCinema(t *testing.T) {
	svc, _, rooms := newCinemaFixture()

	created, err := svc.CreateCinema(context.Background(), cinemaReq())
	require.NoError(t, err)
	assert.Equal(t, "Grand Central", created.Name)

	room := &entity.ScreeningRoom{Name: "Room 1", TotalSeats: 80}
	room.ID = uuid.New()
	room.CinemaID = uuid.MustParse(created.ID)
	rooms.rooms[room.ID] = room

	detail, err := svc.GetCinemaByID(context.Background(), created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Rooms, 1)
	assert.Equal(t, 80, detail.Rooms[0].TotalSeats)
}

func TestGetCinemasFiltersByCity(t *testing.T) {
	svc, _, _ := newCinemaFixture()

	_, err := svc.CreateCinema(context.Background(), cinemaReq())
	require.NoError(t, err)

	porto := cinemaReq()
	porto.Name = "Riverside"
	porto.City = "Porto"
	porto.Email = "riverside@example.com"
	_, err = svc.CreateCinema(context.Background(), porto)
	require.NoError(t, err)

	city := "Porto"
	page := &request.PaginatedRequest{Page: 1, PerPage: 10}
	resp, err := svc.GetCinemas(context.Background(), page, &city)
	require.NoError(t, err)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "Riverside", resp.Items[0].Name)
}

func TestUpdateRoomCapacityFrozenWithScreenings(t *testing.T) {
	svc, _, rooms := newCinemaFixture()

	room := &entity.ScreeningRoom{Name: "Room 1", TotalSeats: 80}
	room.ID = uuid.New()
	rooms.rooms[room.ID] = room
	rooms.hasScreenings = true

	seats := 100
	_, err := svc.UpdateRoom(context.Background(), room.ID.String(), &request.RoomUpdateRequest{
		TotalSeats: &seats,
	})
	assert.ErrorIs(t, err, entity.ErrRoomHasScreenings)
	assert.Equal(t, 80, room.TotalSeats)

	// Renaming stays allowed, capacity untouched.
	name := "Room One"
	updated, err := svc.UpdateRoom(context.Background(), room.ID.String(), &request.RoomUpdateRequest{
		Name: &name,
	})
	require.NoError(t, err)
	assert.Equal(t, "Room One", updated.Name)
	assert.Equal(t, 80, updated.TotalSeats)
}

func TestUpdateRoomCapacityAllowedWithoutScreenings(t *testing.T) {
	svc, _, rooms := newCinemaFixture()

	room := &entity.ScreeningRoom{Name: "Room 1", TotalSeats: 80}
	room.ID = uuid.New()
	rooms.rooms[room.ID] = room

	seats := 100
	updated, err := svc.UpdateRoom(context.Background(), room.ID.String(), &request.RoomUpdateRequest{
		TotalSeats: &seats,
	})
	require.NoError(t, err)
	assert.Equal(t, 100, updated.TotalSeats)
}

func TestDeleteCinemaUnknownID(t *testing.T) {
	svc, _, _ := newCinemaFixture()

	err := svc.DeleteCinema(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, entity.ErrCinemaNotFound)
}
