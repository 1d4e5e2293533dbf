package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/titikcuci/booking-service/internal/domain"
	catalogRepo "github.com/titikcuci/booking-service/internal/infra/storage/catalog"
	"github.com/titikcuci/booking-service/pkg/txmanager"
)

// noteBookingCreated is the note on the initial BOOKED history row.
const noteBookingCreated = "Pesanan berhasil dibuat"

// maxAttempts bounds the retry on transient conflicts: a serialization
// failure or a booking-number collision is retried once with a freshly
// derived sequence number.
const maxAttempts = 2

// UseCase creates bookings: validation, authorization, then one
// serializable transaction covering the capacity check, the per-day
// sequence read, the booking insert and the initial history row.
type UseCase struct {
	bookingRepo  BookingRepository
	historyRepo  HistoryRepository
	catalogRepo  CatalogRepository
	txManager    TransactionManager
	encoder      DisplayEncoder
	metrics      Metrics
	timeProvider TimeProvider
	logger       Logger

	schedule     domain.Schedule
	slotCapacity int
	numberPrefix string
}

// NewUseCase creates the booking-creation usecase. metrics may be nil when
// metrics are disabled.
func NewUseCase(
	bookingRepo BookingRepository,
	historyRepo HistoryRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	encoder DisplayEncoder,
	metrics Metrics,
	logger Logger,
	schedule domain.Schedule,
	slotCapacity int,
	numberPrefix string,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		historyRepo:  historyRepo,
		catalogRepo:  catalogRepo,
		txManager:    txManager,
		encoder:      encoder,
		metrics:      metrics,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
		schedule:     schedule,
		slotCapacity: slotCapacity,
		numberPrefix: numberPrefix,
	}
}

// Execute runs the creation flow.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, vehicle=%d, service=%d, location=%d, slot=%s",
		req.UserID, req.VehicleID, req.ServiceID, req.LocationID, req.SlotTime.UTC().Format("2006-01-02T15:04:05Z07:00"))

	// 1. Request shape.
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Slot timestamp against the operating window and grid.
	now := uc.timeProvider.Now()
	if err := validateSlot(uc.schedule, req.SlotTime, now); err != nil {
		uc.logger.Warn("CreateBooking: slot validation failed: %v", err)
		return nil, err
	}

	// 3. The vehicle must belong to the requester.
	vehicle, err := uc.catalogRepo.FindOwnedVehicle(ctx, req.VehicleID, req.UserID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrVehicleNotFound) {
			uc.logger.Warn("CreateBooking: vehicle id=%d not owned by user id=%d", req.VehicleID, req.UserID)
			return nil, ErrNotOwner
		}
		uc.logger.Error("CreateBooking: failed to get vehicle id=%d: %v", req.VehicleID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// 4. Price is copied from the service at creation time.
	service, err := uc.catalogRepo.FindService(ctx, req.ServiceID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("CreateBooking: service id=%d not found", req.ServiceID)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("CreateBooking: failed to get service id=%d: %v", req.ServiceID, err)
		return nil, fmt.Errorf("%w: failed to get service: %v", ErrInternal, err)
	}

	// 5. The location must exist.
	if _, err := uc.catalogRepo.FindLocation(ctx, req.LocationID); err != nil {
		if errors.Is(err, catalogRepo.ErrLocationNotFound) {
			uc.logger.Warn("CreateBooking: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("CreateBooking: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	// 6. Capacity check, sequence, insert and initial history as one
	// serializable unit. Transient conflicts re-derive the sequence and
	// retry once.
	var result *domain.Booking
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err = uc.createInTx(ctx, req, service.Price)
		if err == nil {
			break
		}
		if txmanager.IsRetryable(err) && attempt < maxAttempts {
			uc.logger.Warn("CreateBooking: transient conflict on attempt %d, retrying: %v", attempt, err)
			continue
		}
		if errors.Is(err, ErrSlotFull) {
			if uc.metrics != nil {
				uc.metrics.IncSlotFull()
			}
			uc.logger.Warn("CreateBooking: slot full at location=%d slot=%s", req.LocationID, req.SlotTime.UTC())
			return nil, ErrSlotFull
		}
		uc.logger.Error("CreateBooking: transaction failed: %v", err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncBookingsCreated()
	}
	uc.logger.Info("CreateBooking: created booking id=%d number=%s queue=%d",
		result.ID, result.BookingNumber, result.QueueNumber)

	// 7. Display code, best-effort: the booking stays valid without it.
	qrCode := ""
	if code, err := uc.encoder.EncodeDataURL(result.BookingNumber); err != nil {
		uc.logger.Warn("CreateBooking: display code failed for %s: %v", result.BookingNumber, err)
	} else {
		qrCode = code
	}

	return &Response{
		ID:            result.ID,
		BookingNumber: result.BookingNumber,
		QueueNumber:   result.QueueNumber,
		BookingDate:   result.BookingDate,
		Status:        result.Status,
		PaymentStatus: result.PaymentStatus,
		TotalPrice:    result.TotalPrice,
		Vehicle: VehicleInfo{
			Plate: vehicle.Plate,
			Type:  string(vehicle.Type),
			Model: vehicle.Model,
		},
		Service: ServiceInfo{
			Name:        service.Name,
			Description: service.Description,
		},
		QRCode:    qrCode,
		CreatedAt: result.CreatedAt,
	}, nil
}

// createInTx is one attempt at the transactional part of the flow.
func (uc *UseCase) createInTx(ctx context.Context, req *Request, price float64) (*domain.Booking, error) {
	var created *domain.Booking

	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// Occupancy for the contested slot. The read and the insert below
		// share the serializable transaction; two concurrent requests that
		// would jointly exceed capacity cannot both commit.
		occupancy, err := uc.bookingRepo.CountAtSlot(txCtx, req.LocationID, req.SlotTime)
		if err != nil {
			return fmt.Errorf("%w: count slot occupancy: %w", ErrInternal, err)
		}
		if occupancy >= uc.slotCapacity {
			return ErrSlotFull
		}

		// Per-location sequence over bookings created today, by creation
		// time. Scopes both the queue number and the booking number.
		dayStart, dayEnd := uc.schedule.CalendarDayBounds(uc.timeProvider.Now())
		createdToday, err := uc.bookingRepo.CountCreatedBetween(txCtx, req.LocationID, dayStart, dayEnd)
		if err != nil {
			return fmt.Errorf("%w: count bookings created today: %w", ErrInternal, err)
		}
		seq := createdToday + 1

		booking := &domain.Booking{
			BookingNumber: domain.BookingNumber(uc.numberPrefix, uc.schedule.Civil(req.SlotTime), seq),
			QueueNumber:   seq,
			UserID:        req.UserID,
			VehicleID:     req.VehicleID,
			ServiceID:     req.ServiceID,
			LocationID:    req.LocationID,
			BookingDate:   req.SlotTime.UTC(),
			TotalPrice:    price,
			Status:        domain.StatusBooked,
			PaymentStatus: domain.PaymentBelumBayar,
		}

		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return err
		}

		_, err = uc.historyRepo.Append(txCtx, &domain.StatusHistory{
			BookingID: created.ID,
			Status:    domain.StatusBooked,
			Note:      noteBookingCreated,
		})
		if err != nil {
			return fmt.Errorf("%w: append initial history: %w", ErrInternal, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}
