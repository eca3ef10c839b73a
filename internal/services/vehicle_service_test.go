package services

import (
	"context"
	"errors"
	"testing"

	"fleetrent/internal/models"
	"fleetrent/pkg/logger"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateVehicleDefaults(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := NewVehicleService(repo, logger.NewNop())

	vehicle, err := svc.CreateVehicle(context.Background(), &CreateVehicleInput{
		Brand:       "  Honda ",
		Model:       "City",
		PricePerDay: 120,
	})
	if err != nil {
		t.Fatalf("CreateVehicle: %v", err)
	}

	if vehicle.Brand != "Honda" {
		t.Errorf("brand = %q, want trimmed %q", vehicle.Brand, "Honda")
	}
	if vehicle.Category != models.CategorySedan {
		t.Errorf("default category = %s, want Sedan", vehicle.Category)
	}
	if vehicle.Seats != 5 {
		t.Errorf("default seats = %d, want 5", vehicle.Seats)
	}
	if vehicle.Transmission != models.TransmissionManual {
		t.Errorf("default transmission = %s, want Manual", vehicle.Transmission)
	}
	if vehicle.Status != models.VehicleStatusActive {
		t.Errorf("new vehicle status = %s, want Active", vehicle.Status)
	}
	if vehicle.Bookings == nil || len(vehicle.Bookings) != 0 {
		t.Errorf("new vehicle must start with an empty booking list")
	}
}

func TestCreateVehicleValidation(t *testing.T) {
	repo := newFakeVehicleRepo()
	svc := NewVehicleService(repo, logger.NewNop())
	ctx := context.Background()

	if _, err := svc.CreateVehicle(ctx, &CreateVehicleInput{Model: "City", PricePerDay: 120}); !errors.Is(err, ErrValidation) {
		t.Errorf("missing brand: err = %v, want ErrValidation", err)
	}
	if _, err := svc.CreateVehicle(ctx, &CreateVehicleInput{Brand: "Honda", Model: "City", PricePerDay: -5}); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("negative price: err = %v, want ErrNegativePrice", err)
	}
	if _, err := svc.CreateVehicle(ctx, &CreateVehicleInput{
		Brand: "Honda", Model: "City", PricePerDay: 120, Category: "Spaceship",
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown category: err = %v, want ErrValidation", err)
	}
	if _, err := svc.CreateVehicle(ctx, &CreateVehicleInput{
		Brand: "Honda", Model: "City", PricePerDay: 120, Transmission: "CVT",
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("unknown transmission: err = %v, want ErrValidation", err)
	}
}

func TestSetVehicleStatusToggle(t *testing.T) {
	vehicle := newTestVehicle(100)
	repo := newFakeVehicleRepo(vehicle)
	svc := NewVehicleService(repo, logger.NewNop())
	ctx := context.Background()

	// Active -> Maintenance -> Active, no guard in either direction.
	updated, err := svc.SetVehicleStatus(ctx, vehicle.ID, models.VehicleStatusMaintenance)
	if err != nil {
		t.Fatalf("to Maintenance: %v", err)
	}
	if updated.Status != models.VehicleStatusMaintenance {
		t.Fatalf("status = %s, want Maintenance", updated.Status)
	}

	updated, err = svc.SetVehicleStatus(ctx, vehicle.ID, models.VehicleStatusActive)
	if err != nil {
		t.Fatalf("back to Active: %v", err)
	}
	if updated.Status != models.VehicleStatusActive {
		t.Fatalf("status = %s, want Active", updated.Status)
	}

	if _, err := svc.SetVehicleStatus(ctx, vehicle.ID, "Scrapped"); !errors.Is(err, ErrInvalidStatus) {
		t.Fatalf("unknown status: err = %v, want ErrInvalidStatus", err)
	}
	if _, err := svc.SetVehicleStatus(ctx, primitive.NewObjectID(), models.VehicleStatusActive); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("unknown vehicle: err = %v, want ErrVehicleNotFound", err)
	}
}

func TestFilterFleetService(t *testing.T) {
	free := newTestVehicle(100)
	taken := newTestVehicle(100)
	taken.Bookings = []models.Booking{confirmed("2026-03-10", "2026-03-12")}
	parked := newTestVehicle(100)
	parked.Status = models.VehicleStatusMaintenance

	repo := newFakeVehicleRepo(free, taken, parked)
	svc := NewVehicleService(repo, logger.NewNop())
	ctx := context.Background()

	start := date("2026-03-11")
	end := date("2026-03-11")

	available, err := svc.FilterFleet(ctx, &start, &end, FleetFilterAvailable)
	if err != nil {
		t.Fatalf("available: %v", err)
	}
	if len(available) != 1 || available[0].ID != free.ID {
		t.Fatalf("available partition = %d vehicles, want just the free one", len(available))
	}

	booked, err := svc.FilterFleet(ctx, &start, &end, FleetFilterBooked)
	if err != nil {
		t.Fatalf("booked: %v", err)
	}
	if len(booked) != 1 || booked[0].ID != taken.ID {
		t.Fatalf("booked partition = %d vehicles, want just the taken one", len(booked))
	}

	// Vehicles in maintenance never appear, whatever the mode.
	all, err := svc.FilterFleet(ctx, nil, nil, FleetFilterAll)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("active fleet = %d vehicles, want 2", len(all))
	}
	for _, v := range all {
		if v.ID == parked.ID {
			t.Fatalf("maintenance vehicle leaked into the fleet listing")
		}
	}

	// A missing range collapses every mode to "all".
	collapsed, err := svc.FilterFleet(ctx, nil, nil, FleetFilterAvailable)
	if err != nil {
		t.Fatalf("missing range: %v", err)
	}
	if len(collapsed) != 2 {
		t.Fatalf("missing range must list the whole active fleet, got %d", len(collapsed))
	}

	if _, err := svc.FilterFleet(ctx, &end, &start, FleetFilterAvailable); err != nil {
		// start == end here; build a genuinely inverted range instead.
		t.Fatalf("equal range: %v", err)
	}
	later := date("2026-03-15")
	if _, err := svc.FilterFleet(ctx, &later, &start, FleetFilterAvailable); !errors.Is(err, ErrInvalidDateRange) {
		t.Fatalf("inverted range: err = %v, want ErrInvalidDateRange", err)
	}
	if _, err := svc.FilterFleet(ctx, &start, &end, "unknown"); !errors.Is(err, ErrValidation) {
		t.Fatalf("unknown mode: err = %v, want ErrValidation", err)
	}
}

func TestUpdateVehicle(t *testing.T) {
	vehicle := newTestVehicle(100)
	repo := newFakeVehicleRepo(vehicle)
	svc := NewVehicleService(repo, logger.NewNop())
	ctx := context.Background()

	price := 150.0
	desc := "Low mileage"
	updated, err := svc.UpdateVehicle(ctx, vehicle.ID, &UpdateVehicleInput{
		PricePerDay: &price,
		Description: &desc,
	})
	if err != nil {
		t.Fatalf("UpdateVehicle: %v", err)
	}
	if updated.PricePerDay != 150 {
		t.Errorf("price = %v, want 150", updated.PricePerDay)
	}
	if updated.Description != "Low mileage" {
		t.Errorf("description = %q, want %q", updated.Description, "Low mileage")
	}

	negative := -1.0
	if _, err := svc.UpdateVehicle(ctx, vehicle.ID, &UpdateVehicleInput{PricePerDay: &negative}); !errors.Is(err, ErrNegativePrice) {
		t.Errorf("negative price: err = %v, want ErrNegativePrice", err)
	}
	if _, err := svc.UpdateVehicle(ctx, primitive.NewObjectID(), &UpdateVehicleInput{PricePerDay: &price}); !errors.Is(err, ErrVehicleNotFound) {
		t.Errorf("unknown vehicle: err = %v, want ErrVehicleNotFound", err)
	}
}

func TestGetFleetStats(t *testing.T) {
	active := newTestVehicle(100)
	parked := newTestVehicle(100)
	parked.Status = models.VehicleStatusMaintenance

	repo := newFakeVehicleRepo(active, parked)
	svc := NewVehicleService(repo, logger.NewNop())

	stats, err := svc.GetFleetStats(context.Background())
	if err != nil {
		t.Fatalf("GetFleetStats: %v", err)
	}
	if stats.Total != 2 || stats.Active != 1 || stats.Maintenance != 1 {
		t.Fatalf("stats = %+v, want total 2, active 1, maintenance 1", stats)
	}
}

func TestDeleteVehicle(t *testing.T) {
	vehicle := newTestVehicle(100)
	repo := newFakeVehicleRepo(vehicle)
	svc := NewVehicleService(repo, logger.NewNop())
	ctx := context.Background()

	if err := svc.DeleteVehicle(ctx, vehicle.ID); err != nil {
		t.Fatalf("DeleteVehicle: %v", err)
	}
	if _, err := svc.GetVehicle(ctx, vehicle.ID); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("get after delete: err = %v, want ErrVehicleNotFound", err)
	}
	if err := svc.DeleteVehicle(ctx, vehicle.ID); !errors.Is(err, ErrVehicleNotFound) {
		t.Fatalf("double delete: err = %v, want ErrVehicleNotFound", err)
	}
}
