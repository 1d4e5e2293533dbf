package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titikcuci/booking-service/internal/domain"
	bookingRepo "github.com/titikcuci/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/titikcuci/booking-service/internal/infra/storage/catalog"
	"github.com/titikcuci/booking-service/pkg/ptr"
)

// In-memory fakes. The tx manager holds a real mutex for the whole
// callback, mirroring the serializable check-then-insert guarantee the
// production manager provides.

type fakeTxManager struct {
	mu sync.Mutex
}

func (m *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return fn(ctx)
}

type fakeBookingRepo struct {
	mu          sync.Mutex
	bookings    []*domain.Booking
	nextID      int64
	createCalls int
	failCreates int
	createErr   error
}

func (r *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createCalls++
	if r.failCreates > 0 {
		r.failCreates--
		return nil, r.createErr
	}
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now().UTC()
	b.UpdatedAt = b.CreatedAt
	stored := *b
	r.bookings = append(r.bookings, &stored)
	return b, nil
}

func (r *fakeBookingRepo) CountAtSlot(_ context.Context, locationID int64, slot time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, b := range r.bookings {
		if b.LocationID == locationID && b.BookingDate.Equal(slot) && b.OccupiesSlot() {
			count++
		}
	}
	return count, nil
}

func (r *fakeBookingRepo) CountCreatedBetween(_ context.Context, locationID int64, from, to time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	count := 0
	for _, b := range r.bookings {
		if b.LocationID == locationID && !b.CreatedAt.Before(from) && b.CreatedAt.Before(to) {
			count++
		}
	}
	return count, nil
}

type fakeHistoryRepo struct {
	mu      sync.Mutex
	entries []*domain.StatusHistory
}

func (r *fakeHistoryRepo) Append(_ context.Context, h *domain.StatusHistory) (*domain.StatusHistory, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h.ID = int64(len(r.entries) + 1)
	h.CreatedAt = time.Now().UTC()
	stored := *h
	r.entries = append(r.entries, &stored)
	return h, nil
}

type fakeCatalogRepo struct {
	vehicleOwner int64
	servicePrice float64
}

func (r *fakeCatalogRepo) FindOwnedVehicle(_ context.Context, vehicleID, ownerID int64) (*domain.Vehicle, error) {
	if ownerID != r.vehicleOwner {
		return nil, catalogRepo.ErrVehicleNotFound
	}
	return &domain.Vehicle{
		ID:      vehicleID,
		OwnerID: ownerID,
		Plate:   "B 1234 XYZ",
		Type:    domain.VehicleMobil,
		Model:   ptr.Ptr("Avanza"),
	}, nil
}

func (r *fakeCatalogRepo) FindService(_ context.Context, serviceID int64) (*domain.Service, error) {
	if serviceID == 404 {
		return nil, catalogRepo.ErrServiceNotFound
	}
	return &domain.Service{ID: serviceID, Name: "Cuci Premium", Price: r.servicePrice}, nil
}

func (r *fakeCatalogRepo) FindLocation(_ context.Context, locationID int64) (*domain.Location, error) {
	if locationID == 404 {
		return nil, catalogRepo.ErrLocationNotFound
	}
	return &domain.Location{ID: locationID, Name: "Titik Cuci Pusat"}, nil
}

type fakeEncoder struct {
	fail bool
}

func (e *fakeEncoder) EncodeDataURL(bookingNumber string) (string, error) {
	if e.fail {
		return "", errors.New("encode failed")
	}
	return "data:image/png;base64,TEST" + bookingNumber, nil
}

type fakeMetrics struct {
	mu       sync.Mutex
	created  int
	slotFull int
}

func (m *fakeMetrics) IncBookingsCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

func (m *fakeMetrics) IncSlotFull() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slotFull++
}

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	uc          *UseCase
	bookingRepo *fakeBookingRepo
	historyRepo *fakeHistoryRepo
	encoder     *fakeEncoder
	metrics     *fakeMetrics
	now         time.Time
	slot        time.Time
}

func newFixture(t *testing.T, capacity int) *fixture {
	t.Helper()

	bookingRepo := &fakeBookingRepo{}
	historyRepo := &fakeHistoryRepo{}
	encoder := &fakeEncoder{}
	metrics := &fakeMetrics{}
	schedule := domain.NewSchedule(time.UTC, 8, 18, 30)
	now := time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

	uc := NewUseCase(
		bookingRepo,
		historyRepo,
		&fakeCatalogRepo{vehicleOwner: 1, servicePrice: 50000},
		&fakeTxManager{},
		encoder,
		metrics,
		nopLogger{},
		schedule,
		capacity,
		"TC-",
	)
	uc.timeProvider = &fixedClock{now: now}

	return &fixture{
		uc:          uc,
		bookingRepo: bookingRepo,
		historyRepo: historyRepo,
		encoder:     encoder,
		metrics:     metrics,
		now:         now,
		slot:        time.Date(2026, 9, 2, 8, 30, 0, 0, time.UTC),
	}
}

func validRequest(f *fixture) *Request {
	return &Request{
		UserID:     1,
		VehicleID:  10,
		ServiceID:  20,
		LocationID: 30,
		SlotTime:   f.slot,
	}
}

func TestCreateBooking(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newFixture(t, 3)

		resp, err := f.uc.Execute(context.Background(), validRequest(f))
		require.NoError(t, err)

		assert.Equal(t, "TC-0209202601", resp.BookingNumber)
		assert.Equal(t, 1, resp.QueueNumber)
		assert.Equal(t, domain.StatusBooked, resp.Status)
		assert.Equal(t, domain.PaymentBelumBayar, resp.PaymentStatus)
		assert.Equal(t, 50000.0, resp.TotalPrice)
		assert.Equal(t, "B 1234 XYZ", resp.Vehicle.Plate)
		assert.Equal(t, "Cuci Premium", resp.Service.Name)
		assert.NotEmpty(t, resp.QRCode)
		assert.Equal(t, 1, f.metrics.created)

		// Initial history row is written atomically with the booking.
		require.Len(t, f.historyRepo.entries, 1)
		assert.Equal(t, domain.StatusBooked, f.historyRepo.entries[0].Status)
		assert.Equal(t, "Pesanan berhasil dibuat", f.historyRepo.entries[0].Note)
	})

	t.Run("SequenceScopedToCreationDay", func(t *testing.T) {
		f := newFixture(t, 3)

		first, err := f.uc.Execute(context.Background(), validRequest(f))
		require.NoError(t, err)

		req := validRequest(f)
		req.SlotTime = f.slot.Add(30 * time.Minute)
		second, err := f.uc.Execute(context.Background(), req)
		require.NoError(t, err)

		assert.Equal(t, 1, first.QueueNumber)
		assert.Equal(t, 2, second.QueueNumber)
	})

	t.Run("SlotFull", func(t *testing.T) {
		f := newFixture(t, 1)

		_, err := f.uc.Execute(context.Background(), validRequest(f))
		require.NoError(t, err)

		_, err = f.uc.Execute(context.Background(), validRequest(f))
		assert.ErrorIs(t, err, ErrSlotFull)
		assert.Equal(t, 1, f.metrics.slotFull)
	})

	t.Run("CancelledBookingFreesSlot", func(t *testing.T) {
		f := newFixture(t, 1)

		resp, err := f.uc.Execute(context.Background(), validRequest(f))
		require.NoError(t, err)

		f.bookingRepo.mu.Lock()
		for _, b := range f.bookingRepo.bookings {
			if b.ID == resp.ID {
				b.Status = domain.StatusDibatalkan
			}
		}
		f.bookingRepo.mu.Unlock()

		_, err = f.uc.Execute(context.Background(), validRequest(f))
		assert.NoError(t, err)
	})

	t.Run("ValidationErrors", func(t *testing.T) {
		f := newFixture(t, 3)

		req := validRequest(f)
		req.UserID = 0
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)

		req = validRequest(f)
		req.SlotTime = f.now.Add(-time.Hour)
		_, err = f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrPastBooking)

		req = validRequest(f)
		req.SlotTime = time.Date(2026, 9, 2, 19, 0, 0, 0, time.UTC)
		_, err = f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeWindow)

		req = validRequest(f)
		req.SlotTime = time.Date(2026, 9, 2, 8, 10, 0, 0, time.UTC)
		_, err = f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidSlotAlignment)

		// Nothing was persisted by any of the rejected requests.
		assert.Empty(t, f.bookingRepo.bookings)
		assert.Empty(t, f.historyRepo.entries)
	})

	t.Run("ForeignVehicleRejected", func(t *testing.T) {
		f := newFixture(t, 3)

		req := validRequest(f)
		req.UserID = 99 // fake catalog only recognizes owner 1
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrNotOwner)
	})

	t.Run("ServiceNotFound", func(t *testing.T) {
		f := newFixture(t, 3)

		req := validRequest(f)
		req.ServiceID = 404
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrServiceNotFound)
	})

	t.Run("LocationNotFound", func(t *testing.T) {
		f := newFixture(t, 3)

		req := validRequest(f)
		req.LocationID = 404
		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrLocationNotFound)
	})

	t.Run("UniqueViolationRetriedWithFreshSequence", func(t *testing.T) {
		f := newFixture(t, 3)
		// The error shape the repository produces for an insert-time
		// booking-number collision; the pq error must survive the wrapping
		// for the retry to see it.
		f.bookingRepo.failCreates = 1
		f.bookingRepo.createErr = fmt.Errorf("%w: Create - execute insert: %w",
			bookingRepo.ErrExecQuery, &pq.Error{Code: "23505"})

		resp, err := f.uc.Execute(context.Background(), validRequest(f))
		require.NoError(t, err)

		assert.Equal(t, 2, f.bookingRepo.createCalls)
		assert.Equal(t, "TC-0209202601", resp.BookingNumber)
		require.Len(t, f.bookingRepo.bookings, 1)
	})

	t.Run("SecondConflictSurfaces", func(t *testing.T) {
		f := newFixture(t, 3)
		f.bookingRepo.failCreates = 2
		f.bookingRepo.createErr = fmt.Errorf("%w: Create - execute insert: %w",
			bookingRepo.ErrExecQuery, &pq.Error{Code: "40001"})

		_, err := f.uc.Execute(context.Background(), validRequest(f))
		assert.ErrorIs(t, err, bookingRepo.ErrExecQuery)
		assert.Equal(t, 2, f.bookingRepo.createCalls)
	})

	t.Run("NonTransientInsertErrorNotRetried", func(t *testing.T) {
		f := newFixture(t, 3)
		f.bookingRepo.failCreates = 1
		f.bookingRepo.createErr = fmt.Errorf("%w: Create - execute insert: %w",
			bookingRepo.ErrExecQuery, &pq.Error{Code: "23503"})

		_, err := f.uc.Execute(context.Background(), validRequest(f))
		assert.ErrorIs(t, err, bookingRepo.ErrExecQuery)
		assert.Equal(t, 1, f.bookingRepo.createCalls)
	})

	t.Run("EncoderFailureTolerated", func(t *testing.T) {
		f := newFixture(t, 3)
		f.encoder.fail = true

		resp, err := f.uc.Execute(context.Background(), validRequest(f))
		require.NoError(t, err)
		assert.Empty(t, resp.QRCode)
		assert.NotEmpty(t, resp.BookingNumber)
	})
}

func TestCreateBookingConcurrentSlotLimit(t *testing.T) {
	const capacity = 3
	const attempts = 4

	f := newFixture(t, capacity)

	var wg sync.WaitGroup
	results := make(chan error, attempts)
	queues := make(chan int, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := f.uc.Execute(context.Background(), validRequest(f))
			results <- err
			if err == nil {
				queues <- resp.QueueNumber
			}
		}()
	}
	wg.Wait()
	close(results)
	close(queues)

	succeeded, slotFull := 0, 0
	for err := range results {
		switch {
		case err == nil:
			succeeded++
		case errors.Is(err, ErrSlotFull):
			slotFull++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, capacity, succeeded)
	assert.Equal(t, attempts-capacity, slotFull)

	// Queue numbers of the winners are distinct.
	seen := make(map[int]bool)
	for q := range queues {
		assert.False(t, seen[q], "duplicate queue number %d", q)
		seen[q] = true
	}
	assert.Len(t, seen, capacity)
}
