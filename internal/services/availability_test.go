package services

import (
	"testing"
	"time"

	"fleetrent/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func confirmed(start, end string) models.Booking {
	return models.Booking{
		ID:        primitive.NewObjectID(),
		StartDate: date(start),
		EndDate:   date(end),
		Status:    models.BookingStatusConfirmed,
	}
}

func cancelled(start, end string) models.Booking {
	b := confirmed(start, end)
	b.Status = models.BookingStatusCancelled
	return b
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name           string
		s1, e1, s2, e2 string
		want           bool
	}{
		{"identical ranges", "2026-02-18", "2026-02-20", "2026-02-18", "2026-02-20", true},
		{"partial overlap at end", "2026-02-18", "2026-02-20", "2026-02-19", "2026-02-21", true},
		{"partial overlap at start", "2026-02-19", "2026-02-21", "2026-02-18", "2026-02-20", true},
		{"contained", "2026-02-18", "2026-02-25", "2026-02-20", "2026-02-21", true},
		{"touching boundary day", "2026-02-18", "2026-02-20", "2026-02-20", "2026-02-22", true},
		{"adjacent, no shared day", "2026-02-18", "2026-02-20", "2026-02-21", "2026-02-23", false},
		{"fully before", "2026-02-01", "2026-02-05", "2026-02-10", "2026-02-12", false},
		{"fully after", "2026-02-10", "2026-02-12", "2026-02-01", "2026-02-05", false},
		{"single day vs single day", "2026-02-18", "2026-02-18", "2026-02-18", "2026-02-18", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(date(tt.s1), date(tt.e1), date(tt.s2), date(tt.e2))
			if got != tt.want {
				t.Fatalf("Overlaps(%s..%s, %s..%s) = %v, want %v", tt.s1, tt.e1, tt.s2, tt.e2, got, tt.want)
			}

			// Overlap is symmetric.
			if Overlaps(date(tt.s2), date(tt.e2), date(tt.s1), date(tt.e1)) != got {
				t.Fatalf("Overlaps is not symmetric for %s..%s vs %s..%s", tt.s1, tt.e1, tt.s2, tt.e2)
			}
		})
	}
}

func TestIsAvailable(t *testing.T) {
	vehicle := &models.Vehicle{
		Bookings: []models.Booking{
			confirmed("2026-02-18", "2026-02-20"),
			cancelled("2026-03-01", "2026-03-10"),
		},
	}

	if IsAvailable(vehicle, date("2026-02-19"), date("2026-02-21")) {
		t.Fatal("expected overlap with confirmed booking to block")
	}
	if !IsAvailable(vehicle, date("2026-02-21"), date("2026-02-25")) {
		t.Fatal("expected range after confirmed booking to be free")
	}
	if !IsAvailable(vehicle, date("2026-03-01"), date("2026-03-10")) {
		t.Fatal("cancelled bookings must never block")
	}
	if !IsAvailable(&models.Vehicle{}, date("2026-02-18"), date("2026-02-20")) {
		t.Fatal("vehicle with no bookings must be available")
	}
}

func TestRentalDays(t *testing.T) {
	tests := []struct {
		start, end string
		want       int
	}{
		{"2026-02-18", "2026-02-18", 1},
		{"2026-02-18", "2026-02-19", 2},
		{"2026-02-18", "2026-02-20", 3},
		{"2026-02-25", "2026-03-03", 7},  // month boundary
		{"2026-12-30", "2027-01-02", 4},  // year boundary
		{"2028-02-28", "2028-03-01", 3},  // leap day
	}

	for _, tt := range tests {
		if got := RentalDays(date(tt.start), date(tt.end)); got != tt.want {
			t.Errorf("RentalDays(%s, %s) = %d, want %d", tt.start, tt.end, got, tt.want)
		}
	}

	// Monotonic non-decreasing in range length.
	start := date("2026-02-01")
	prev := 0
	for days := 0; days < 60; days++ {
		got := RentalDays(start, start.AddDate(0, 0, days))
		if got < prev {
			t.Fatalf("RentalDays decreased at length %d: %d < %d", days, got, prev)
		}
		prev = got
	}
}

func TestComputeTotal(t *testing.T) {
	if got := ComputeTotal(date("2026-02-18"), date("2026-02-20"), 100); got != 300 {
		t.Fatalf("three-day rental at 100/day = %v, want 300", got)
	}
	if got := ComputeTotal(date("2026-02-18"), date("2026-02-18"), 75); got != 75 {
		t.Fatalf("same-day rental must count one day, got %v", got)
	}
	if got := ComputeTotal(date("2026-02-18"), date("2026-02-20"), 0); got != 0 {
		t.Fatalf("zero price must yield zero total, got %v", got)
	}
}

func TestFilterFleet(t *testing.T) {
	free := &models.Vehicle{ID: primitive.NewObjectID(), Status: models.VehicleStatusActive}
	taken := &models.Vehicle{
		ID:     primitive.NewObjectID(),
		Status: models.VehicleStatusActive,
		Bookings: []models.Booking{
			confirmed("2026-02-18", "2026-02-20"),
		},
	}
	fleet := []*models.Vehicle{free, taken}
	start, end := date("2026-02-19"), date("2026-02-21")

	if got := FilterFleet(fleet, start, end, FleetFilterAll); len(got) != 2 {
		t.Fatalf("mode all: got %d vehicles, want 2", len(got))
	}

	available := FilterFleet(fleet, start, end, FleetFilterAvailable)
	if len(available) != 1 || available[0].ID != free.ID {
		t.Fatalf("mode available: got %d vehicles, want only the free one", len(available))
	}

	booked := FilterFleet(fleet, start, end, FleetFilterBooked)
	if len(booked) != 1 || booked[0].ID != taken.ID {
		t.Fatalf("mode booked: got %d vehicles, want only the taken one", len(booked))
	}

	// A range nothing is booked for yields an empty booked partition.
	if got := FilterFleet(fleet, date("2026-06-01"), date("2026-06-05"), FleetFilterBooked); len(got) != 0 {
		t.Fatalf("mode booked with no overlapping bookings: got %d vehicles, want 0", len(got))
	}
}

// The partition must agree with IsAvailable for every vehicle and range:
// fleet filtering and booking acceptance share one predicate and may never
// diverge.
func TestFilterFleetAgreesWithIsAvailable(t *testing.T) {
	fleet := []*models.Vehicle{
		{ID: primitive.NewObjectID(), Status: models.VehicleStatusActive},
		{ID: primitive.NewObjectID(), Status: models.VehicleStatusActive, Bookings: []models.Booking{
			confirmed("2026-02-10", "2026-02-12"),
			confirmed("2026-02-20", "2026-02-22"),
			cancelled("2026-02-14", "2026-02-16"),
		}},
		{ID: primitive.NewObjectID(), Status: models.VehicleStatusActive, Bookings: []models.Booking{
			confirmed("2026-02-01", "2026-02-28"),
		}},
	}

	base := date("2026-02-01")
	for offset := 0; offset < 35; offset++ {
		for length := 0; length < 7; length++ {
			start := base.AddDate(0, 0, offset)
			end := start.AddDate(0, 0, length)

			available := FilterFleet(fleet, start, end, FleetFilterAvailable)
			booked := FilterFleet(fleet, start, end, FleetFilterBooked)

			if len(available)+len(booked) != len(fleet) {
				t.Fatalf("partition at %v+%vd lost vehicles: %d available, %d booked",
					offset, length, len(available), len(booked))
			}
			for _, v := range available {
				if !IsAvailable(v, start, end) {
					t.Fatalf("vehicle %s classified available but IsAvailable is false", v.ID.Hex())
				}
			}
			for _, v := range booked {
				if IsAvailable(v, start, end) {
					t.Fatalf("vehicle %s classified booked but IsAvailable is true", v.ID.Hex())
				}
			}
		}
	}
}
