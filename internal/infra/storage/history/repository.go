// Package history persists the append-only booking status audit trail.
// Rows are never updated or deleted.
package history

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/titikcuci/booking-service/internal/domain"
	"github.com/titikcuci/booking-service/pkg/psqlbuilder"
	"github.com/titikcuci/booking-service/pkg/txmanager"
)

// Repository persists status history rows.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a history repository over the given executor.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// Append inserts one history row. Runs inside the caller's transaction
// when one is active, so a booking insert or status update and its history
// row commit or roll back together.
func (r *Repository) Append(ctx context.Context, h *domain.StatusHistory) (*domain.StatusHistory, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("booking_status_history").
		Columns("booking_id", "status", "note").
		Values(h.BookingID, h.Status, h.Note).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Append - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&h.ID, &createdAt); err != nil {
		return nil, fmt.Errorf("%w: Append - execute insert: %w", ErrExecQuery, err)
	}
	h.CreatedAt = createdAt.Time

	return h, nil
}

// ListByBooking returns a booking's history ordered by timestamp
// ascending, which by the append-only invariant is a valid path through
// the status pipeline.
func (r *Repository) ListByBooking(ctx context.Context, bookingID int64) ([]*domain.StatusHistory, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "booking_id", "status", "note", "created_at").
		From("booking_status_history").
		Where(squirrel.Eq{"booking_id": bookingID}).
		OrderBy("created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	entries := make([]*domain.StatusHistory, 0)
	for rows.Next() {
		var (
			h         domain.StatusHistory
			createdAt sql.NullTime
		)
		if err := rows.Scan(&h.ID, &h.BookingID, &h.Status, &h.Note, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: ListByBooking - scan row: %v", ErrScanRow, err)
		}
		h.CreatedAt = createdAt.Time
		entries = append(entries, &h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByBooking - rows error: %v", ErrScanRow, err)
	}
	return entries, nil
}
