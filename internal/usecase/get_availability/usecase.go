package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/titikcuci/booking-service/internal/domain"
	catalogRepo "github.com/titikcuci/booking-service/internal/infra/storage/catalog"
)

// UseCase projects the slot grid for one location and date. Read-only:
// no booking side effects, ever.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger

	schedule     domain.Schedule
	slotCapacity int
}

// NewUseCase creates the availability projector. The schedule and capacity
// are the same values the creation path enforces.
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	logger Logger,
	schedule domain.Schedule,
	slotCapacity int,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		logger:       logger,
		schedule:     schedule,
		slotCapacity: slotCapacity,
	}
}

// Execute builds the grid.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: location=%d, date=%s",
		req.LocationID, req.Date.Format(domain.DateFormat))

	if req.LocationID <= 0 {
		return nil, fmt.Errorf("%w: locationID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if _, err := uc.catalogRepo.FindLocation(ctx, req.LocationID); err != nil {
		if errors.Is(err, catalogRepo.ErrLocationNotFound) {
			uc.logger.Warn("GetAvailability: location id=%d not found", req.LocationID)
			return nil, ErrLocationNotFound
		}
		uc.logger.Error("GetAvailability: failed to get location id=%d: %v", req.LocationID, err)
		return nil, fmt.Errorf("%w: failed to get location: %v", ErrInternal, err)
	}

	open, close := uc.schedule.DayBounds(req.Date)
	counts, err := uc.bookingRepo.SlotCounts(ctx, req.LocationID, open, close)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get slot counts: %v", err)
		return nil, fmt.Errorf("%w: failed to get slot counts: %v", ErrInternal, err)
	}

	entries := buildGrid(uc.schedule, req.Date, counts, uc.slotCapacity)

	uc.logger.Info("GetAvailability: location=%d date=%s entries=%d",
		req.LocationID, req.Date.Format(domain.DateFormat), len(entries))

	return &Response{
		LocationID: req.LocationID,
		Date:       req.Date,
		Entries:    entries,
	}, nil
}
