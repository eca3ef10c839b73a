package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"fleetrent/internal/models"
	"fleetrent/internal/repositories/interfaces"
	"fleetrent/internal/utils"
	"fleetrent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CreateBookingInput struct {
	CustomerName string
	Phone        string
	StartDate    time.Time
	EndDate      time.Time

	// PriceOverride, when set, replaces the vehicle's stored daily price.
	// Must be non-negative.
	PriceOverride *float64
}

type BookingService interface {
	CreateBooking(ctx context.Context, vehicleID primitive.ObjectID, input *CreateBookingInput) (*models.Booking, error)
	SetBookingStatus(ctx context.Context, vehicleID, bookingID primitive.ObjectID, status models.BookingStatus) (*models.Booking, error)
	CancelBooking(ctx context.Context, vehicleID, bookingID primitive.ObjectID) (*models.Booking, error)
	ListBookings(ctx context.Context, vehicleID primitive.ObjectID) ([]models.Booking, error)
}

type bookingService struct {
	vehicleRepo interfaces.VehicleRepository
	logger      *logger.Logger
}

func NewBookingService(vehicleRepo interfaces.VehicleRepository, log *logger.Logger) BookingService {
	return &bookingService{
		vehicleRepo: vehicleRepo,
		logger:      log,
	}
}

// CreateBooking appends a Confirmed booking after checking availability.
// The append is conditional on the vehicle version read during the check, so
// two concurrent requests for overlapping ranges cannot both succeed: the
// loser re-reads, re-checks, and retries up to BookingWriteRetries times.
func (s *bookingService) CreateBooking(ctx context.Context, vehicleID primitive.ObjectID, input *CreateBookingInput) (*models.Booking, error) {
	customerName := strings.TrimSpace(input.CustomerName)
	if customerName == "" {
		return nil, ErrCustomerNameRequired
	}

	start := utils.NormalizeDate(input.StartDate)
	end := utils.NormalizeDate(input.EndDate)
	if start.After(end) {
		return nil, ErrInvalidDateRange
	}
	if days := RentalDays(start, end); days > utils.MaxRentalDays {
		return nil, fmt.Errorf("rental of %d days exceeds the %d-day limit: %w", days, utils.MaxRentalDays, ErrInvalidDateRange)
	}
	if input.PriceOverride != nil && *input.PriceOverride < 0 {
		return nil, ErrNegativePrice
	}

	for attempt := 0; attempt < utils.BookingWriteRetries; attempt++ {
		vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
		if err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				return nil, ErrVehicleNotFound
			}
			return nil, err
		}

		if !IsAvailable(vehicle, start, end) {
			return nil, ErrBookingConflict
		}

		pricePerDay := vehicle.PricePerDay
		if input.PriceOverride != nil {
			pricePerDay = *input.PriceOverride
		}

		booking := &models.Booking{
			ID:           primitive.NewObjectID(),
			CustomerName: customerName,
			Phone:        strings.TrimSpace(input.Phone),
			StartDate:    start,
			EndDate:      end,
			TotalAmount:  ComputeTotal(start, end, pricePerDay),
			Status:       models.BookingStatusConfirmed,
			CreatedAt:    time.Now(),
		}

		err = s.vehicleRepo.AppendBooking(ctx, vehicleID, vehicle.Version, booking)
		if errors.Is(err, interfaces.ErrStaleWrite) {
			s.logger.WithFields(map[string]interface{}{
				"vehicle_id": vehicleID.Hex(),
				"attempt":    attempt + 1,
			}).Warn("booking append lost a write race, retrying")
			continue
		}
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("failed to append booking: %w", err)
		}

		s.logger.WithFields(map[string]interface{}{
			"vehicle_id": vehicleID.Hex(),
			"booking_id": booking.ID.Hex(),
			"start_date": utils.FormatDate(start),
			"end_date":   utils.FormatDate(end),
			"total":      booking.TotalAmount,
		}).Info("booking created")

		return booking, nil
	}

	// Every attempt found the range free but lost the version race; another
	// writer is contending for this vehicle, so surface it as a conflict.
	return nil, ErrBookingConflict
}

// SetBookingStatus toggles a booking between Confirmed and Cancelled.
// Setting the status it already has is a no-op. Re-confirming a cancelled
// booking does not re-check overlap against other bookings.
func (s *bookingService) SetBookingStatus(ctx context.Context, vehicleID, bookingID primitive.ObjectID, status models.BookingStatus) (*models.Booking, error) {
	if !models.ValidBookingStatus(status) {
		return nil, fmt.Errorf("unknown booking status %q: %w", status, ErrInvalidStatus)
	}

	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}

	booking := vehicle.FindBooking(bookingID)
	if booking == nil {
		return nil, ErrBookingNotFound
	}

	if booking.Status == status {
		return booking, nil
	}

	if err := s.vehicleRepo.SetBookingStatus(ctx, vehicleID, bookingID, status); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}

	booking.Status = status

	s.logger.WithFields(map[string]interface{}{
		"vehicle_id": vehicleID.Hex(),
		"booking_id": bookingID.Hex(),
		"status":     status,
	}).Info("booking status updated")

	return booking, nil
}

// CancelBooking marks a booking Cancelled. Bookings are never deleted, and
// cancelling an already-cancelled booking succeeds without side effects.
func (s *bookingService) CancelBooking(ctx context.Context, vehicleID, bookingID primitive.ObjectID) (*models.Booking, error) {
	return s.SetBookingStatus(ctx, vehicleID, bookingID, models.BookingStatusCancelled)
}

func (s *bookingService) ListBookings(ctx context.Context, vehicleID primitive.ObjectID) ([]models.Booking, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, vehicleID)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return vehicle.Bookings, nil
}
