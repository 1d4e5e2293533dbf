// Package bookings is the read side of the booking core: detail, history
// list and status timeline. Writes go through the usecases.
package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/titikcuci/booking-service/internal/domain"
	bookingRepo "github.com/titikcuci/booking-service/internal/infra/storage/booking"
	"github.com/titikcuci/booking-service/internal/service/bookings/models"
)

// Service serves booking reads.
type Service struct {
	bookingRepo BookingRepository
	historyRepo HistoryRepository
	catalogRepo CatalogRepository
	encoder     DisplayEncoder
	logger      Logger
}

// NewService creates the bookings read service.
func NewService(
	bookingRepo BookingRepository,
	historyRepo HistoryRepository,
	catalogRepo CatalogRepository,
	encoder DisplayEncoder,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		historyRepo: historyRepo,
		catalogRepo: catalogRepo,
		encoder:     encoder,
		logger:      logger,
	}
}

// GetByID returns one booking with its display data. A booking owned by
// someone else reports not found, so existence does not leak.
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%d", id, userID)

	booking, err := s.fetchOwned(ctx, id, userID)
	if err != nil {
		return nil, err
	}

	resp := models.FromDomainBooking(booking)
	s.enrich(ctx, resp, booking.VehicleID, booking.ServiceID)

	qr, err := s.encoder.EncodeDataURL(booking.BookingNumber)
	if err != nil {
		s.logger.Warn("GetByID: QR encode failed for booking id=%d: %v", id, err)
	} else {
		resp.QRCode = qr
	}

	return resp, nil
}

// GetUserBookings returns the user's booking history, newest first.
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%d", len(bookings), userID)
	return models.FromDomainBookingList(bookings), nil
}

// Timeline returns the booking's status audit trail, oldest first.
func (s *Service) Timeline(ctx context.Context, bookingID, userID int64) (*models.TimelineResponse, error) {
	s.logger.Info("Timeline: fetching history for booking id=%d, user=%d", bookingID, userID)

	if _, err := s.fetchOwned(ctx, bookingID, userID); err != nil {
		return nil, err
	}

	entries, err := s.historyRepo.ListByBooking(ctx, bookingID)
	if err != nil {
		s.logger.Error("Timeline: repository error for booking id=%d: %v", bookingID, err)
		return nil, fmt.Errorf("%w: Timeline - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHistory(bookingID, entries), nil
}

// fetchOwned loads the booking and applies the ownership check.
func (s *Service) fetchOwned(ctx context.Context, id, userID int64) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("fetchOwned: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("fetchOwned: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: fetchOwned - repository error: %v", ErrInternal, err)
	}
	if booking.UserID != userID {
		s.logger.Warn("fetchOwned: booking id=%d not owned by user=%d", id, userID)
		return nil, ErrBookingNotFound
	}
	return booking, nil
}

// enrich fills the vehicle and service blocks. Lookups are best-effort:
// display data missing from the catalog degrades the response, never fails it.
func (s *Service) enrich(ctx context.Context, resp *models.BookingResponse, vehicleID, serviceID int64) {
	if vehicle, err := s.catalogRepo.FindVehicle(ctx, vehicleID); err != nil {
		s.logger.Warn("enrich: vehicle id=%d lookup failed: %v", vehicleID, err)
	} else {
		resp.Vehicle = &models.VehicleInfo{
			ID:    vehicle.ID,
			Plate: vehicle.Plate,
			Type:  string(vehicle.Type),
			Model: vehicle.Model,
		}
	}

	if service, err := s.catalogRepo.FindService(ctx, serviceID); err != nil {
		s.logger.Warn("enrich: service id=%d lookup failed: %v", serviceID, err)
	} else {
		resp.Service = &models.ServiceInfo{
			ID:    service.ID,
			Name:  service.Name,
			Price: service.Price,
		}
	}
}
