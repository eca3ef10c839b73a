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

type CreateVehicleInput struct {
	Brand        string
	Model        string
	Description  string
	Category     models.VehicleCategory
	Seats        int
	Transmission models.Transmission
	ImageURL     string
	LogoURL      string
	PricePerDay  float64
}

type UpdateVehicleInput struct {
	Description  *string
	Category     *models.VehicleCategory
	Seats        *int
	Transmission *models.Transmission
	ImageURL     *string
	LogoURL      *string
	PricePerDay  *float64
}

type FleetStats struct {
	Total       int64 `json:"total"`
	Active      int64 `json:"active"`
	Maintenance int64 `json:"maintenance"`
}

type VehicleService interface {
	CreateVehicle(ctx context.Context, input *CreateVehicleInput) (*models.Vehicle, error)
	GetVehicle(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error)
	ListVehicles(ctx context.Context, filter *interfaces.VehicleFilter, params *utils.PaginationParams) ([]*models.Vehicle, int64, error)
	FilterFleet(ctx context.Context, start, end *time.Time, mode FleetFilterMode) ([]*models.Vehicle, error)
	UpdateVehicle(ctx context.Context, id primitive.ObjectID, input *UpdateVehicleInput) (*models.Vehicle, error)
	SetVehicleStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) (*models.Vehicle, error)
	DeleteVehicle(ctx context.Context, id primitive.ObjectID) error
	GetFleetStats(ctx context.Context) (*FleetStats, error)
}

type vehicleService struct {
	vehicleRepo interfaces.VehicleRepository
	logger      *logger.Logger
}

func NewVehicleService(vehicleRepo interfaces.VehicleRepository, log *logger.Logger) VehicleService {
	return &vehicleService{
		vehicleRepo: vehicleRepo,
		logger:      log,
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, input *CreateVehicleInput) (*models.Vehicle, error) {
	if strings.TrimSpace(input.Brand) == "" || strings.TrimSpace(input.Model) == "" {
		return nil, fmt.Errorf("brand and model are required: %w", ErrValidation)
	}
	if input.PricePerDay < 0 {
		return nil, ErrNegativePrice
	}

	vehicle := &models.Vehicle{
		Brand:        strings.TrimSpace(input.Brand),
		Model:        strings.TrimSpace(input.Model),
		Description:  input.Description,
		Category:     input.Category,
		Seats:        input.Seats,
		Transmission: input.Transmission,
		ImageURL:     input.ImageURL,
		LogoURL:      input.LogoURL,
		PricePerDay:  input.PricePerDay,
		Status:       models.VehicleStatusActive,
		Bookings:     []models.Booking{},
	}

	// Defaults mirror the fleet catalogue conventions.
	if vehicle.Category == "" {
		vehicle.Category = models.CategorySedan
	}
	if vehicle.Seats == 0 {
		vehicle.Seats = utils.DefaultSeats
	}
	if vehicle.Transmission == "" {
		vehicle.Transmission = models.TransmissionManual
	}

	if !models.ValidVehicleCategory(vehicle.Category) {
		return nil, fmt.Errorf("unknown category %q: %w", vehicle.Category, ErrValidation)
	}
	if !models.ValidTransmission(vehicle.Transmission) {
		return nil, fmt.Errorf("unknown transmission %q: %w", vehicle.Transmission, ErrValidation)
	}

	if err := s.vehicleRepo.Create(ctx, vehicle); err != nil {
		return nil, fmt.Errorf("failed to create vehicle: %w", err)
	}

	s.logger.WithField("vehicle_id", vehicle.ID.Hex()).Info("vehicle created")
	return vehicle, nil
}

func (s *vehicleService) GetVehicle(ctx context.Context, id primitive.ObjectID) (*models.Vehicle, error) {
	vehicle, err := s.vehicleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, err
	}
	return vehicle, nil
}

func (s *vehicleService) ListVehicles(ctx context.Context, filter *interfaces.VehicleFilter, params *utils.PaginationParams) ([]*models.Vehicle, int64, error) {
	return s.vehicleRepo.List(ctx, filter, params)
}

// FilterFleet classifies the active fleet against a queried date range.
// Without a range, "all" is the only meaningful mode and is what you get.
func (s *vehicleService) FilterFleet(ctx context.Context, start, end *time.Time, mode FleetFilterMode) ([]*models.Vehicle, error) {
	if mode == "" {
		mode = FleetFilterAll
	}
	if !ValidFleetFilterMode(mode) {
		return nil, fmt.Errorf("unknown fleet filter mode %q: %w", mode, ErrValidation)
	}

	if start == nil || end == nil {
		mode = FleetFilterAll
	} else if start.After(*end) {
		return nil, ErrInvalidDateRange
	}

	vehicles, err := s.vehicleRepo.GetActiveFleet(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load active fleet: %w", err)
	}

	if mode == FleetFilterAll {
		return vehicles, nil
	}
	return FilterFleet(vehicles, *start, *end, mode), nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, id primitive.ObjectID, input *UpdateVehicleInput) (*models.Vehicle, error) {
	if input.PricePerDay != nil && *input.PricePerDay < 0 {
		return nil, ErrNegativePrice
	}
	if input.Category != nil && !models.ValidVehicleCategory(*input.Category) {
		return nil, fmt.Errorf("unknown category %q: %w", *input.Category, ErrValidation)
	}
	if input.Transmission != nil && !models.ValidTransmission(*input.Transmission) {
		return nil, fmt.Errorf("unknown transmission %q: %w", *input.Transmission, ErrValidation)
	}

	updates := map[string]interface{}{}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Category != nil {
		updates["category"] = *input.Category
	}
	if input.Seats != nil {
		updates["seats"] = *input.Seats
	}
	if input.Transmission != nil {
		updates["transmission"] = *input.Transmission
	}
	if input.ImageURL != nil {
		updates["image_url"] = *input.ImageURL
	}
	if input.LogoURL != nil {
		updates["logo_url"] = *input.LogoURL
	}
	if input.PricePerDay != nil {
		updates["price_per_day"] = *input.PricePerDay
	}

	if len(updates) > 0 {
		if err := s.vehicleRepo.Update(ctx, id, updates); err != nil {
			if errors.Is(err, interfaces.ErrNotFound) {
				return nil, ErrVehicleNotFound
			}
			return nil, fmt.Errorf("failed to update vehicle: %w", err)
		}
	}

	return s.GetVehicle(ctx, id)
}

// SetVehicleStatus toggles between Active and Maintenance. The transition is
// a free toggle: there are no guard conditions in either direction.
func (s *vehicleService) SetVehicleStatus(ctx context.Context, id primitive.ObjectID, status models.VehicleStatus) (*models.Vehicle, error) {
	if !models.ValidVehicleStatus(status) {
		return nil, fmt.Errorf("unknown vehicle status %q: %w", status, ErrInvalidStatus)
	}

	if err := s.vehicleRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return nil, ErrVehicleNotFound
		}
		return nil, fmt.Errorf("failed to update vehicle status: %w", err)
	}

	s.logger.WithFields(map[string]interface{}{
		"vehicle_id": id.Hex(),
		"status":     status,
	}).Info("vehicle status updated")

	return s.GetVehicle(ctx, id)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, id primitive.ObjectID) error {
	if err := s.vehicleRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, interfaces.ErrNotFound) {
			return ErrVehicleNotFound
		}
		return fmt.Errorf("failed to delete vehicle: %w", err)
	}

	s.logger.WithField("vehicle_id", id.Hex()).Info("vehicle deleted")
	return nil
}

func (s *vehicleService) GetFleetStats(ctx context.Context) (*FleetStats, error) {
	total, err := s.vehicleRepo.GetTotalCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles: %w", err)
	}

	active, err := s.vehicleRepo.GetCountByStatus(ctx, models.VehicleStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to count active vehicles: %w", err)
	}

	maintenance, err := s.vehicleRepo.GetCountByStatus(ctx, models.VehicleStatusMaintenance)
	if err != nil {
		return nil, fmt.Errorf("failed to count vehicles in maintenance: %w", err)
	}

	return &FleetStats{
		Total:       total,
		Active:      active,
		Maintenance: maintenance,
	}, nil
}
