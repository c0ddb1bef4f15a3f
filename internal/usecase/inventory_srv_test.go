package usecase

import (
	"context"
	"sync"
	"testing"
	"time"

	"cinema-chain/internal/data/entity"
	"cinema-chain/internal/data/repository"
	"cinema-chain/internal/dto/request"
	"cinema-chain/internal/queue"
	"cinema-chain/pkg/cache"
	"cinema-chain/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// memInventory mirrors the store's transactional behavior in memory: one
// lock per operation, capacity re-checked under it, counter and
// reservation row moving together or not at all.
type memInventory struct {
	mu           sync.Mutex
	screenings   map[uuid.UUID]*entity.Screening
	reservations map[uuid.UUID]*entity.Reservation

	// failures, when set, makes the next mutations fail with the given
	// error before touching any state.
	failures int
	failWith error
}

func newMemInventory() *memInventory {
	return &memInventory{
		screenings:   make(map[uuid.UUID]*entity.Screening),
		reservations: make(map[uuid.UUID]*entity.Reservation),
	}
}

func (m *memInventory) addScreening(start time.Time, seats int) uuid.UUID {
	m.mu.Lock()
	defer m.mu.Unlock()

	s := &entity.Screening{StartTime: start, RemainingSeats: seats}
	s.ID = uuid.New()
	m.screenings[s.ID] = s
	return s.ID
}

func (m *memInventory) ReserveSeats(ctx context.Context, reservation *entity.Reservation) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failures > 0 {
		m.failures--
		return m.failWith
	}

	screening, ok := m.screenings[reservation.ScreeningID]
	if !ok {
		return entity.ErrScreeningNotFound
	}

	if err := screening.CheckReserve(reservation.BookedSeats, time.Now()); err != nil {
		return err
	}

	screening.RemainingSeats -= reservation.BookedSeats
	stored := *reservation
	m.reservations[reservation.ID] = &stored
	return nil
}

func (m *memInventory) CancelReservation(ctx context.Context, reservationID uuid.UUID) (*entity.Reservation, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failures > 0 {
		m.failures--
		return nil, m.failWith
	}

	reservation, ok := m.reservations[reservationID]
	if !ok {
		return nil, entity.ErrReservationNotFound
	}
	if !reservation.Active() {
		return nil, entity.ErrAlreadyCancelled
	}

	reservation.Status = entity.ReservationStatusCancelled
	m.screenings[reservation.ScreeningID].RemainingSeats += reservation.BookedSeats

	copied := *reservation
	return &copied, nil
}

func (m *memInventory) RemainingSeats(ctx context.Context, screeningID uuid.UUID) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	screening, ok := m.screenings[screeningID]
	if !ok {
		return 0, entity.ErrScreeningNotFound
	}
	return screening.RemainingSeats, nil
}

func (m *memInventory) remaining(t *testing.T, id uuid.UUID) int {
	t.Helper()
	seats, err := m.RemainingSeats(context.Background(), id)
	require.NoError(t, err)
	return seats
}

// memReservations serves the read side over the same map.
type memReservations struct {
	store *memInventory
}

func (m *memReservations) FindByID(ctx context.Context, id uuid.UUID) (*entity.Reservation, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	reservation, ok := m.store.reservations[id]
	if !ok {
		return nil, nil
	}
	copied := *reservation
	return &copied, nil
}

func (m *memReservations) FindByCustomerID(ctx context.Context, customerID uuid.UUID, limit, offset int) ([]*entity.Reservation, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	var out []*entity.Reservation
	for _, r := range m.store.reservations {
		if r.CustomerID == customerID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *memReservations) CountByCustomerID(ctx context.Context, customerID uuid.UUID) (int64, error) {
	rs, _ := m.FindByCustomerID(ctx, customerID, 0, 0)
	return int64(len(rs)), nil
}

func (m *memReservations) FindByScreeningID(ctx context.Context, screeningID uuid.UUID) ([]*entity.Reservation, error) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()

	var out []*entity.Reservation
	for _, r := range m.store.reservations {
		if r.ScreeningID == screeningID {
			copied := *r
			out = append(out, &copied)
		}
	}
	return out, nil
}

func newTestInventoryService(store *memInventory, cfg utils.InventoryConfig) InventoryService {
	repo := &repository.Repository{
		Inventory:   store,
		Reservation: &memReservations{store: store},
	}
	log := zap.NewNop()
	availability := cache.NewAvailabilityCache(nil, time.Second, log)
	publisher := queue.NewPublisher("", log)

	return NewInventoryService(repo, cfg, availability, publisher, log)
}

func defaultConfig() utils.InventoryConfig {
	return utils.InventoryConfig{
		OperationTimeout: 3 * time.Second,
		RetryAttempts:    3,
		RetryDelay:       time.Millisecond,
	}
}

func reserveReq(screeningID uuid.UUID, seats int) *request.CreateReservationRequest {
	return &request.CreateReservationRequest{
		ScreeningID:    screeningID.String(),
		RequestedSeats: seats,
	}
}

func TestReserveRoundTrip(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 10)
	customerID := uuid.New().String()

	reservation, err := svc.Reserve(context.Background(), customerID, reserveReq(screeningID, 4))
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReservationStatusCommitted), reservation.Status)
	assert.Equal(t, 4, reservation.BookedSeats)
	assert.Equal(t, 6, store.remaining(t, screeningID))

	cancelled, err := svc.Cancel(context.Background(), customerID, string(entity.RoleCustomer), reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, string(entity.ReservationStatusCancelled), cancelled.Status)
	assert.Equal(t, 10, store.remaining(t, screeningID))
}

func TestConcurrentReservesNeverOversell(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 5)

	// Two requests for 3 seats against 5 remaining: exactly one commits.
	var wg sync.WaitGroup
	results := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, results[i] = svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 3))
		}(i)
	}
	wg.Wait()

	var committed, rejected int
	for _, err := range results {
		if err == nil {
			committed++
		} else {
			require.ErrorIs(t, err, entity.ErrInsufficientSeats)
			rejected++
		}
	}
	assert.Equal(t, 1, committed)
	assert.Equal(t, 1, rejected)
	assert.Equal(t, 2, store.remaining(t, screeningID))
}

func TestConcurrentReservesManyCustomers(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 20)

	// 50 customers each want 1 seat; exactly 20 can win.
	var wg sync.WaitGroup
	var mu sync.Mutex
	committed := 0
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 1)); err == nil {
				mu.Lock()
				committed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, committed)
	assert.Equal(t, 0, store.remaining(t, screeningID))
}

func TestReserveAllThenOneMore(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 5)

	_, err := svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 5))
	require.NoError(t, err)
	assert.Equal(t, 0, store.remaining(t, screeningID))

	_, err = svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 1))
	assert.ErrorIs(t, err, entity.ErrInsufficientSeats)
	assert.Equal(t, 0, store.remaining(t, screeningID))
}

func TestReserveClosedScreening(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(-time.Minute), 50)

	_, err := svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 1))
	assert.ErrorIs(t, err, entity.ErrScreeningClosed)
	assert.Equal(t, 50, store.remaining(t, screeningID))
}

func TestReserveUnknownScreening(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())

	_, err := svc.Reserve(context.Background(), uuid.New().String(), reserveReq(uuid.New(), 1))
	assert.ErrorIs(t, err, entity.ErrScreeningNotFound)
}

func TestReserveRejectsNonPositiveSeats(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 5)

	_, err := svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 0))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, -2))
	require.Error(t, err)
	assert.Equal(t, 5, store.remaining(t, screeningID))
}

func TestCancelIsIdempotent(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 10)
	customerID := uuid.New().String()

	reservation, err := svc.Reserve(context.Background(), customerID, reserveReq(screeningID, 3))
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), customerID, string(entity.RoleCustomer), reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, store.remaining(t, screeningID))

	_, err = svc.Cancel(context.Background(), customerID, string(entity.RoleCustomer), reservation.ID)
	assert.ErrorIs(t, err, entity.ErrAlreadyCancelled)
	// The counter moved exactly once.
	assert.Equal(t, 10, store.remaining(t, screeningID))
}

func TestCancelForeignReservationHiddenFromCustomer(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 10)
	owner := uuid.New().String()

	reservation, err := svc.Reserve(context.Background(), owner, reserveReq(screeningID, 2))
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), uuid.New().String(), string(entity.RoleCustomer), reservation.ID)
	assert.ErrorIs(t, err, entity.ErrReservationNotFound)
	assert.Equal(t, 8, store.remaining(t, screeningID))
}

func TestCancelByAdminAllowed(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 10)

	reservation, err := svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 2))
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), uuid.New().String(), string(entity.RoleApplicationAdmin), reservation.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, store.remaining(t, screeningID))
}

func TestReserveRetriesTransientFailures(t *testing.T) {
	store := newMemInventory()
	store.failures = 2
	store.failWith = entity.ErrConflict

	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 5)

	reservation, err := svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 2))
	require.NoError(t, err)
	assert.Equal(t, 2, reservation.BookedSeats)
	assert.Equal(t, 3, store.remaining(t, screeningID))
}

func TestReserveGivesUpAfterRetriesExhausted(t *testing.T) {
	store := newMemInventory()
	store.failures = 10
	store.failWith = entity.ErrStoreUnavailable

	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 5)

	_, err := svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 2))
	assert.ErrorIs(t, err, entity.ErrStoreUnavailable)
	assert.Equal(t, 5, store.remaining(t, screeningID))
}

func TestReserveDoesNotRetryTerminalErrors(t *testing.T) {
	store := newMemInventory()
	store.failures = 1
	store.failWith = entity.ErrInsufficientSeats

	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 5)

	_, err := svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 2))
	assert.ErrorIs(t, err, entity.ErrInsufficientSeats)
	// A terminal error consumes a single attempt.
	assert.Equal(t, 0, store.failures)
}

func TestAvailabilityReadsThrough(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 12)

	availability, err := svc.Availability(context.Background(), screeningID.String())
	require.NoError(t, err)
	assert.Equal(t, 12, availability.RemainingSeats)
	assert.Equal(t, screeningID.String(), availability.ScreeningID)

	_, err = svc.Availability(context.Background(), uuid.New().String())
	assert.ErrorIs(t, err, entity.ErrScreeningNotFound)
}

func TestGetCustomerReservations(t *testing.T) {
	store := newMemInventory()
	svc := newTestInventoryService(store, defaultConfig())
	screeningID := store.addScreening(time.Now().Add(time.Hour), 20)
	customerID := uuid.New().String()

	for i := 0; i < 3; i++ {
		_, err := svc.Reserve(context.Background(), customerID, reserveReq(screeningID, 1))
		require.NoError(t, err)
	}
	_, err := svc.Reserve(context.Background(), uuid.New().String(), reserveReq(screeningID, 1))
	require.NoError(t, err)

	page := &request.PaginatedRequest{Page: 1, PerPage: 10}
	resp, err := svc.GetCustomerReservations(context.Background(), customerID, page)
	require.NoError(t, err)
	assert.Len(t, resp.Items, 3)
	assert.Equal(t, 3, resp.TotalItems)
}
