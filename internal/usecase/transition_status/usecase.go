package transition_status

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/titikcuci/booking-service/internal/domain"
	bookingRepo "github.com/titikcuci/booking-service/internal/infra/storage/booking"
	"github.com/titikcuci/booking-service/pkg/ptr"
)

// UseCase advances a booking through the status pipeline: the status
// update and the history append commit atomically; the customer
// notification is emitted afterwards, best-effort.
//
// By default any member of the status set may be applied regardless of the
// current status, matching the historical behavior of the admin endpoint.
// strictTransitions enables the forward-only guard.
type UseCase struct {
	bookingRepo      BookingRepository
	historyRepo      HistoryRepository
	notificationRepo NotificationRepository
	txManager        TransactionManager
	metrics          Metrics
	logger           Logger

	strictTransitions bool
}

// NewUseCase creates the status-transition usecase. metrics may be nil
// when metrics are disabled.
func NewUseCase(
	bookingRepo BookingRepository,
	historyRepo HistoryRepository,
	notificationRepo NotificationRepository,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
	strictTransitions bool,
) *UseCase {
	return &UseCase{
		bookingRepo:       bookingRepo,
		historyRepo:       historyRepo,
		notificationRepo:  notificationRepo,
		txManager:         txManager,
		metrics:           metrics,
		logger:            logger,
		strictTransitions: strictTransitions,
	}
}

// Execute applies the transition.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("TransitionStatus: booking=%d, target=%s", req.BookingID, req.Status)

	// 1. The target must be a known status. Checked before any read or
	// write so an unknown value leaves everything untouched.
	if !domain.IsValidStatus(req.Status) {
		uc.logger.Warn("TransitionStatus: unknown status %q for booking=%d", req.Status, req.BookingID)
		return nil, ErrInvalidStatus
	}

	// 2. Read, guard, update and history append as one transaction. The
	// read holds the row lock, so two concurrent transitions cannot both
	// pass the forward-only guard against the same observed status, and a
	// crash between update and append never leaves a change unrecorded.
	var (
		booking   *domain.Booking
		updatedAt time.Time
	)
	err := uc.txManager.Do(ctx, func(txCtx context.Context) error {
		b, err := uc.bookingRepo.GetForUpdate(txCtx, req.BookingID)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: get booking: %v", ErrInternal, err)
		}

		if uc.strictTransitions && !b.CanTransitionTo(req.Status) {
			uc.logger.Warn("TransitionStatus: %s -> %s rejected for booking=%d",
				b.Status, req.Status, req.BookingID)
			return ErrTransitionNotAllowed
		}

		ts, err := uc.bookingRepo.UpdateStatus(txCtx, req.BookingID, req.Status)
		if err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			return fmt.Errorf("%w: update status: %v", ErrInternal, err)
		}

		_, err = uc.historyRepo.Append(txCtx, &domain.StatusHistory{
			BookingID: req.BookingID,
			Status:    req.Status,
			Note:      req.Note,
		})
		if err != nil {
			return fmt.Errorf("%w: append history: %v", ErrInternal, err)
		}

		booking = b
		updatedAt = ts
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) || errors.Is(err, ErrTransitionNotAllowed) {
			return nil, err
		}
		uc.logger.Error("TransitionStatus: transaction failed for booking=%d: %v", req.BookingID, err)
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.IncStatusTransition(string(req.Status))
	}
	uc.logger.Info("TransitionStatus: booking=%d now %s", req.BookingID, req.Status)

	// 3. Notification, outside the transaction and best-effort: a failed
	// write is logged and dropped, never rolled into the transition.
	uc.notify(ctx, booking, req.Status)

	return &Response{
		ID:            booking.ID,
		BookingNumber: booking.BookingNumber,
		Status:        req.Status,
		UpdatedAt:     updatedAt,
	}, nil
}

func (uc *UseCase) notify(ctx context.Context, booking *domain.Booking, status domain.BookingStatus) {
	title, message, visible := domain.StatusNotification(status)
	if !visible {
		return
	}

	_, err := uc.notificationRepo.Create(ctx, &domain.Notification{
		UserID:    booking.UserID,
		BookingID: ptr.Ptr(booking.ID),
		Category:  domain.CategoryStatusUpdate,
		Title:     title,
		Message:   fmt.Sprintf("%s (%s)", message, booking.BookingNumber),
	})
	if err != nil {
		if uc.metrics != nil {
			uc.metrics.IncNotificationFailed()
		}
		uc.logger.Error("TransitionStatus: notification failed for booking=%d: %v", booking.ID, err)
		return
	}
	if uc.metrics != nil {
		uc.metrics.IncNotificationSent()
	}
}
