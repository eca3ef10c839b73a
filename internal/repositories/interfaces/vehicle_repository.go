package interfaces

import (
	"context"
	"errors"

	"fleetrent/internal/models"
	"fleetrent/internal/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Storage-level sentinel errors. Services translate these into domain errors.
var (
	// ErrNotFound means the referenced vehicle or booking does not exist.
	ErrNotFound = errors.New("record not found")

	// ErrStaleWrite means a conditional write lost a race: the vehicle's
	// version changed between read and write. Safe to retry after re-reading.
	ErrStaleWrite = errors.New("stale write: vehicle version changed")
)

type VehicleFilter struct {
	Status   models.VehicleStatus
	Category models.VehicleCategory
}

type VehicleRepository interface {
	// Basic CRUD operations
	Create(ctx context.Context, vehicle *models.Vehicle) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	Update(ctx context.Context, id primitive.ObjectID, updates map[string]interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error

	// Status operations
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) error

	// Search and listing
	List(ctx context.Context, filter *VehicleFilter, params *utils.PaginationParams) ([]*models.Vehicle, int64, error)
	GetActiveFleet(ctx context.Context) ([]*models.Vehicle, error)

	// Booking mutations. AppendBooking only succeeds when the stored document
	// still carries expectedVersion; otherwise it returns ErrStaleWrite.
	AppendBooking(ctx context.Context, vehicleID primitive.ObjectID, expectedVersion int64, booking *models.Booking) error
	SetBookingStatus(ctx context.Context, vehicleID, bookingID primitive.ObjectID, status models.BookingStatus) error

	// Analytics
	GetTotalCount(ctx context.Context) (int64, error)
	GetCountByStatus(ctx context.Context, status models.VehicleStatus) (int64, error)
}
