package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/titikcuci/booking-service/internal/domain"
	bookingRepo "github.com/titikcuci/booking-service/internal/infra/storage/booking"
	catalogRepo "github.com/titikcuci/booking-service/internal/infra/storage/catalog"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking
}

func (r *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	copied := *b
	return &copied, nil
}

func (r *fakeBookingRepo) GetByUserID(_ context.Context, userID int64) ([]*domain.Booking, error) {
	out := make([]*domain.Booking, 0)
	for _, b := range r.bookings {
		if b.UserID == userID {
			copied := *b
			out = append(out, &copied)
		}
	}
	return out, nil
}

type fakeHistoryRepo struct {
	entries []*domain.StatusHistory
}

func (r *fakeHistoryRepo) ListByBooking(_ context.Context, bookingID int64) ([]*domain.StatusHistory, error) {
	out := make([]*domain.StatusHistory, 0)
	for _, h := range r.entries {
		if h.BookingID == bookingID {
			out = append(out, h)
		}
	}
	return out, nil
}

type fakeCatalogRepo struct {
	failVehicle bool
}

func (r *fakeCatalogRepo) FindVehicle(_ context.Context, vehicleID int64) (*domain.Vehicle, error) {
	if r.failVehicle {
		return nil, catalogRepo.ErrVehicleNotFound
	}
	return &domain.Vehicle{ID: vehicleID, Plate: "B 1234 XYZ", Type: domain.VehicleMobil}, nil
}

func (r *fakeCatalogRepo) FindService(_ context.Context, serviceID int64) (*domain.Service, error) {
	return &domain.Service{ID: serviceID, Name: "Cuci Premium", Price: 50000}, nil
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

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func newService(t *testing.T) (*Service, *fakeBookingRepo, *fakeHistoryRepo, *fakeCatalogRepo, *fakeEncoder) {
	t.Helper()

	repo := &fakeBookingRepo{bookings: map[int64]*domain.Booking{
		1: {
			ID:            1,
			BookingNumber: "TC-0209202601",
			QueueNumber:   1,
			UserID:        7,
			VehicleID:     10,
			ServiceID:     20,
			LocationID:    30,
			BookingDate:   time.Date(2026, 9, 2, 8, 30, 0, 0, time.UTC),
			Status:        domain.StatusBooked,
			PaymentStatus: domain.PaymentBelumBayar,
		},
	}}
	historyRepo := &fakeHistoryRepo{entries: []*domain.StatusHistory{
		{BookingID: 1, Status: domain.StatusBooked, Note: "Pesanan berhasil dibuat"},
		{BookingID: 1, Status: domain.StatusDiterima, Note: ""},
	}}
	catalog := &fakeCatalogRepo{}
	encoder := &fakeEncoder{}

	svc := NewService(repo, historyRepo, catalog, encoder, nopLogger{})
	return svc, repo, historyRepo, catalog, encoder
}

func TestGetByID(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, _, _, _, _ := newService(t)

		resp, err := svc.GetByID(context.Background(), 1, 7)
		require.NoError(t, err)

		assert.Equal(t, "TC-0209202601", resp.BookingNumber)
		require.NotNil(t, resp.Vehicle)
		assert.Equal(t, "B 1234 XYZ", resp.Vehicle.Plate)
		require.NotNil(t, resp.Service)
		assert.Equal(t, "Cuci Premium", resp.Service.Name)
		assert.NotEmpty(t, resp.QRCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, _, _, _, _ := newService(t)

		_, err := svc.GetByID(context.Background(), 99, 7)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("ForeignBookingReportsNotFound", func(t *testing.T) {
		svc, _, _, _, _ := newService(t)

		_, err := svc.GetByID(context.Background(), 1, 8)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})

	t.Run("MissingVehicleDegradesResponse", func(t *testing.T) {
		svc, _, _, catalog, _ := newService(t)
		catalog.failVehicle = true

		resp, err := svc.GetByID(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.Nil(t, resp.Vehicle)
		assert.NotNil(t, resp.Service)
	})

	t.Run("EncoderFailureDegradesResponse", func(t *testing.T) {
		svc, _, _, _, encoder := newService(t)
		encoder.fail = true

		resp, err := svc.GetByID(context.Background(), 1, 7)
		require.NoError(t, err)
		assert.Empty(t, resp.QRCode)
	})
}

func TestGetUserBookings(t *testing.T) {
	svc, _, _, _, _ := newService(t)

	list, err := svc.GetUserBookings(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, list.Bookings, 1)

	empty, err := svc.GetUserBookings(context.Background(), 8)
	require.NoError(t, err)
	assert.Empty(t, empty.Bookings)
}

func TestTimeline(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc, _, _, _, _ := newService(t)

		timeline, err := svc.Timeline(context.Background(), 1, 7)
		require.NoError(t, err)

		require.Len(t, timeline.Entries, 2)
		assert.Equal(t, "BOOKED", timeline.Entries[0].Status)
		assert.Equal(t, "DITERIMA", timeline.Entries[1].Status)
	})

	t.Run("ForeignBookingReportsNotFound", func(t *testing.T) {
		svc, _, _, _, _ := newService(t)

		_, err := svc.Timeline(context.Background(), 1, 8)
		assert.ErrorIs(t, err, ErrBookingNotFound)
	})
}
