// Package catalog reads the vehicle, service and location tables the
// booking core depends on. Their CRUD lives elsewhere; the core only ever
// looks them up.
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/titikcuci/booking-service/internal/domain"
	"github.com/titikcuci/booking-service/pkg/psqlbuilder"
	"github.com/titikcuci/booking-service/pkg/txmanager"
)

// Repository reads catalog tables.
type Repository struct {
	db txmanager.Executor
}

// NewRepository creates a catalog repository over the given executor.
func NewRepository(db txmanager.Executor) *Repository {
	return &Repository{db: db}
}

// FindOwnedVehicle returns the vehicle only if it belongs to ownerID.
// Ownership is part of the WHERE clause, so a foreign vehicle is
// indistinguishable from a missing one.
func (r *Repository) FindOwnedVehicle(ctx context.Context, vehicleID, ownerID int64) (*domain.Vehicle, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "owner_id", "plate", "type", "model").
		From("vehicles").
		Where(squirrel.Eq{"id": vehicleID, "owner_id": ownerID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindOwnedVehicle - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Vehicle
	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.OwnerID, &v.Plate, &v.Type, &v.Model)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindOwnedVehicle - scan vehicle: %v", ErrScanRow, err)
	}
	return &v, nil
}

// FindVehicle returns a vehicle by id regardless of owner. Used for
// display data on bookings the caller already owns.
func (r *Repository) FindVehicle(ctx context.Context, vehicleID int64) (*domain.Vehicle, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "owner_id", "plate", "type", "model").
		From("vehicles").
		Where(squirrel.Eq{"id": vehicleID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindVehicle - build select query: %v", ErrBuildQuery, err)
	}

	var v domain.Vehicle
	err = executor.QueryRowContext(ctx, query, args...).Scan(&v.ID, &v.OwnerID, &v.Plate, &v.Type, &v.Model)
	if err == sql.ErrNoRows {
		return nil, ErrVehicleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindVehicle - scan vehicle: %v", ErrScanRow, err)
	}
	return &v, nil
}

// FindService returns a wash package by id.
func (r *Repository) FindService(ctx context.Context, serviceID int64) (*domain.Service, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "price", "vehicle_type").
		From("services").
		Where(squirrel.Eq{"id": serviceID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindService - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.Service
	err = executor.QueryRowContext(ctx, query, args...).Scan(&s.ID, &s.Name, &s.Description, &s.Price, &s.VehicleType)
	if err == sql.ErrNoRows {
		return nil, ErrServiceNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindService - scan service: %v", ErrScanRow, err)
	}
	return &s, nil
}

// FindLocation returns a wash site by id.
func (r *Repository) FindLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	executor := txmanager.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "address", "latitude", "longitude", "phone", "photo_url").
		From("locations").
		Where(squirrel.Eq{"id": locationID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindLocation - build select query: %v", ErrBuildQuery, err)
	}

	var l domain.Location
	err = executor.QueryRowContext(ctx, query, args...).Scan(&l.ID, &l.Name, &l.Address, &l.Latitude, &l.Longitude, &l.Phone, &l.PhotoURL)
	if err == sql.ErrNoRows {
		return nil, ErrLocationNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindLocation - scan location: %v", ErrScanRow, err)
	}
	return &l, nil
}
