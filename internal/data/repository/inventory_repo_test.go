package repository

import (
	"context"
	"testing"
	"time"

	"cinema-chain/internal/data/entity"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newInventoryMock(t *testing.T) (pgxmock.PgxPoolIface, InventoryRepository) {
	t.Helper()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, NewInventoryRepository(mock, zap.NewNop())
}

func testReservation(seats int) *entity.Reservation {
	now := time.Now()
	r := &entity.Reservation{
		ScreeningID: uuid.New(),
		CustomerID:  uuid.New(),
		BookedSeats: seats,
		Status:      entity.ReservationStatusCommitted,
	}
	r.ID = uuid.New()
	r.CreatedAt = now
	r.UpdatedAt = now
	return r
}

func TestReserveSeatsCommitsCounterAndRow(t *testing.T) {
	mock, repo := newInventoryMock(t)
	res := testReservation(3)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT start_time, remaining_seats").
		WithArgs(res.ScreeningID).
		WillReturnRows(pgxmock.NewRows([]string{"start_time", "remaining_seats"}).
			AddRow(time.Now().Add(time.Hour), 5))
	mock.ExpectExec("UPDATE screenings").
		WithArgs(res.ScreeningID, res.BookedSeats).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("INSERT INTO reservations").
		WithArgs(res.ID, res.ScreeningID, res.CustomerID, res.BookedSeats, res.Status, res.CreatedAt, res.UpdatedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	require.NoError(t, repo.ReserveSeats(context.Background(), res))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSeatsRollsBackWhenInsufficient(t *testing.T) {
	mock, repo := newInventoryMock(t)
	res := testReservation(4)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT start_time, remaining_seats").
		WithArgs(res.ScreeningID).
		WillReturnRows(pgxmock.NewRows([]string{"start_time", "remaining_seats"}).
			AddRow(time.Now().Add(time.Hour), 2))
	mock.ExpectRollback()

	err := repo.ReserveSeats(context.Background(), res)
	assert.ErrorIs(t, err, entity.ErrInsufficientSeats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSeatsRejectsStartedScreening(t *testing.T) {
	mock, repo := newInventoryMock(t)
	res := testReservation(1)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT start_time, remaining_seats").
		WithArgs(res.ScreeningID).
		WillReturnRows(pgxmock.NewRows([]string{"start_time", "remaining_seats"}).
			AddRow(time.Now().Add(-time.Minute), 50))
	mock.ExpectRollback()

	err := repo.ReserveSeats(context.Background(), res)
	assert.ErrorIs(t, err, entity.ErrScreeningClosed)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSeatsUnknownScreening(t *testing.T) {
	mock, repo := newInventoryMock(t)
	res := testReservation(1)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT start_time, remaining_seats").
		WithArgs(res.ScreeningID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	err := repo.ReserveSeats(context.Background(), res)
	assert.ErrorIs(t, err, entity.ErrScreeningNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSeatsMapsSerializationFailureToConflict(t *testing.T) {
	mock, repo := newInventoryMock(t)
	res := testReservation(2)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT start_time, remaining_seats").
		WithArgs(res.ScreeningID).
		WillReturnError(&pgconn.PgError{Code: "40001"})
	mock.ExpectRollback()

	err := repo.ReserveSeats(context.Background(), res)
	assert.ErrorIs(t, err, entity.ErrConflict)
	assert.True(t, entity.Transient(err))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestReserveSeatsMapsConnectionFailureToUnavailable(t *testing.T) {
	mock, repo := newInventoryMock(t)
	res := testReservation(2)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT start_time, remaining_seats").
		WithArgs(res.ScreeningID).
		WillReturnError(&pgconn.PgError{Code: "57P01"})
	mock.ExpectRollback()

	err := repo.ReserveSeats(context.Background(), res)
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelReservationReleasesSeats(t *testing.T) {
	mock, repo := newInventoryMock(t)

	reservationID := uuid.New()
	screeningID := uuid.New()
	customerID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, screening_id, customer_id, booked_seats, status").
		WithArgs(reservationID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "screening_id", "customer_id", "booked_seats", "status", "created_at", "updated_at",
		}).AddRow(reservationID, screeningID, customerID, 3, entity.ReservationStatusCommitted, now, now))
	mock.ExpectExec("UPDATE reservations").
		WithArgs(reservationID, entity.ReservationStatusCancelled).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectExec("UPDATE screenings").
		WithArgs(screeningID, 3).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))
	mock.ExpectCommit()
	mock.ExpectRollback()

	cancelled, err := repo.CancelReservation(context.Background(), reservationID)
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCancelled, cancelled.Status)
	assert.Equal(t, screeningID, cancelled.ScreeningID)
	assert.Equal(t, 3, cancelled.BookedSeats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelReservationIsIdempotent(t *testing.T) {
	mock, repo := newInventoryMock(t)

	reservationID := uuid.New()
	now := time.Now()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, screening_id, customer_id, booked_seats, status").
		WithArgs(reservationID).
		WillReturnRows(pgxmock.NewRows([]string{
			"id", "screening_id", "customer_id", "booked_seats", "status", "created_at", "updated_at",
		}).AddRow(reservationID, uuid.New(), uuid.New(), 3, entity.ReservationStatusCancelled, now, now))
	mock.ExpectRollback()

	_, err := repo.CancelReservation(context.Background(), reservationID)
	assert.ErrorIs(t, err, entity.ErrAlreadyCancelled)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCancelReservationUnknownID(t *testing.T) {
	mock, repo := newInventoryMock(t)
	reservationID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, screening_id, customer_id, booked_seats, status").
		WithArgs(reservationID).
		WillReturnError(pgx.ErrNoRows)
	mock.ExpectRollback()

	_, err := repo.CancelReservation(context.Background(), reservationID)
	assert.ErrorIs(t, err, entity.ErrReservationNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemainingSeatsReads(t *testing.T) {
	mock, repo := newInventoryMock(t)
	screeningID := uuid.New()

	mock.ExpectQuery("SELECT remaining_seats FROM screenings").
		WithArgs(screeningID).
		WillReturnRows(pgxmock.NewRows([]string{"remaining_seats"}).AddRow(7))

	seats, err := repo.RemainingSeats(context.Background(), screeningID)
	require.NoError(t, err)
	assert.Equal(t, 7, seats)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRemainingSeatsUnknownScreening(t *testing.T) {
	mock, repo := newInventoryMock(t)
	screeningID := uuid.New()

	mock.ExpectQuery("SELECT remaining_seats FROM screenings").
		WithArgs(screeningID).
		WillReturnError(pgx.ErrNoRows)

	_, err := repo.RemainingSeats(context.Background(), screeningID)
	assert.ErrorIs(t, err, entity.ErrScreeningNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
