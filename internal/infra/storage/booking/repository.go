package booking

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/titikcuci/booking-service/internal/domain"
	"github.com/titikcuci/booking-service/pkg/psqlbuilder"
	"github.com/titikcuci/booking-service/pkg/txmanager"
)

var bookingColumns = []string{
	"id",
	"booking_number",
	"queue_number",
	"user_id",
	"vehicle_id",
	"service_id",
	"location_id",
	"booking_date",
	"total_price",
	"status",
	"payment_status",
	"created_at",
	"updated_at",
}

// Repository persists bookings.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a booking repository over the given executor.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new booking and fills in the generated id and
// timestamps. Callers holding a transaction in ctx (the creation usecase
// always does) get the insert executed inside it.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"booking_number",
			"queue_number",
			"user_id",
			"vehicle_id",
			"service_id",
			"location_id",
			"booking_date",
			"total_price",
			"status",
			"payment_status",
		).
		Values(
			b.BookingNumber,
			b.QueueNumber,
			b.UserID,
			b.VehicleID,
			b.ServiceID,
			b.LocationID,
			b.BookingDate,
			b.TotalPrice,
			b.Status,
			b.PaymentStatus,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt, &updatedAt)
	if err != nil {
		// The driver error stays in the chain: the creation retry
		// classifies 23505/40001 through errors.As.
		return nil, fmt.Errorf("%w: Create - execute insert: %w", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return b, nil
}

// GetByID returns one booking by its surrogate id.
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}
	return b, nil
}

// GetForUpdate returns one booking by id while taking its row lock, so
// concurrent status transitions on the same booking serialize. Must run
// inside a transaction.
func (r *Repository) GetForUpdate(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForUpdate - scan booking: %v", ErrScanRow, err)
	}
	return b, nil
}

// GetByUserID returns all bookings of a user, newest booking date first.
func (r *Repository) GetByUserID(ctx context.Context, userID int64) ([]*domain.Booking, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(bookingColumns...).
		From("bookings").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

// CountAtSlot counts the non-cancelled bookings occupying one exact slot at
// one location. Must run inside the same transaction as the insert that
// depends on it; the serializable isolation level closes the
// check-then-act race.
func (r *Repository) CountAtSlot(ctx context.Context, locationID int64, slot time.Time) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"location_id": locationID, "booking_date": slot}).
		Where(squirrel.NotEq{"status": domain.StatusDibatalkan}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountAtSlot - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAtSlot - scan count: %w", ErrScanRow, err)
	}
	return count, nil
}

// CountCreatedBetween counts bookings created at a location within
// [from, to), by creation time. Feeds the per-day sequence number, so it
// shares the creation transaction.
func (r *Repository) CountCreatedBetween(ctx context.Context, locationID int64, from, to time.Time) (int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.GtOrEq{"created_at": from}).
		Where(squirrel.Lt{"created_at": to}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("%w: CountCreatedBetween - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountCreatedBetween - scan count: %w", ErrScanRow, err)
	}
	return count, nil
}

// SlotCounts returns the number of non-cancelled bookings per exact slot
// timestamp at a location within [from, to). Read-only view for the
// availability projector.
func (r *Repository) SlotCounts(ctx context.Context, locationID int64, from, to time.Time) (map[time.Time]int, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_date", "COUNT(*)").
		From("bookings").
		Where(squirrel.Eq{"location_id": locationID}).
		Where(squirrel.GtOrEq{"booking_date": from}).
		Where(squirrel.Lt{"booking_date": to}).
		Where(squirrel.NotEq{"status": domain.StatusDibatalkan}).
		GroupBy("booking_date").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: SlotCounts - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: SlotCounts - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	counts := make(map[time.Time]int)
	for rows.Next() {
		var (
			slot  time.Time
			count int
		)
		if err := rows.Scan(&slot, &count); err != nil {
			return nil, fmt.Errorf("%w: SlotCounts - scan row: %v", ErrScanRow, err)
		}
		counts[slot.UTC()] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: SlotCounts - rows error: %v", ErrScanRow, err)
	}
	return counts, nil
}

// UpdateStatus sets the booking's status field and returns the stored
// updated_at. History append is the caller's responsibility, inside the
// same transaction.
func (r *Repository) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (time.Time, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING updated_at").
		ToSql()
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	var updatedAt time.Time
	err = executor.QueryRowContext(ctx, query, args...).Scan(&updatedAt)
	if err == sql.ErrNoRows {
		return time.Time{}, ErrBookingNotFound
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}
	return updatedAt.UTC(), nil
}

func scanBooking(row *sql.Row) (*domain.Booking, error) {
	var (
		b                    domain.Booking
		createdAt, updatedAt sql.NullTime
	)
	err := row.Scan(
		&b.ID,
		&b.BookingNumber,
		&b.QueueNumber,
		&b.UserID,
		&b.VehicleID,
		&b.ServiceID,
		&b.LocationID,
		&b.BookingDate,
		&b.TotalPrice,
		&b.Status,
		&b.PaymentStatus,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	b.BookingDate = b.BookingDate.UTC()
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time
	return &b, nil
}

func scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		var (
			b                    domain.Booking
			createdAt, updatedAt sql.NullTime
		)
		err := rows.Scan(
			&b.ID,
			&b.BookingNumber,
			&b.QueueNumber,
			&b.UserID,
			&b.VehicleID,
			&b.ServiceID,
			&b.LocationID,
			&b.BookingDate,
			&b.TotalPrice,
			&b.Status,
			&b.PaymentStatus,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		b.BookingDate = b.BookingDate.UTC()
		b.CreatedAt = createdAt.Time
		b.UpdatedAt = updatedAt.Time
		bookings = append(bookings, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}
	return bookings, nil
}
