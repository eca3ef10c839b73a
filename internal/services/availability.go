package services

import (
	"time"

	"fleetrent/internal/models"
	"fleetrent/internal/utils"
)

// Availability engine: the single source of truth for date-range overlap
// logic. Booking acceptance and fleet filtering must both go through
// IsAvailable — the comparison is never reimplemented at a call site.

// Overlaps reports whether two inclusive calendar-date ranges share at least
// one day: [s1,e1] and [s2,e2] overlap iff s1 <= e2 && e1 >= s2.
func Overlaps(s1, e1, s2, e2 time.Time) bool {
	return !s1.After(e2) && !e1.Before(s2)
}

// BookingBlocks reports whether an existing booking blocks the candidate
// range. Only Confirmed bookings block; Cancelled ones never do.
func BookingBlocks(b *models.Booking, start, end time.Time) bool {
	if b.Status != models.BookingStatusConfirmed {
		return false
	}
	return Overlaps(b.StartDate, b.EndDate, start, end)
}

// IsAvailable reports whether no confirmed booking on the vehicle overlaps
// the candidate range. Callers must ensure start <= end.
func IsAvailable(vehicle *models.Vehicle, start, end time.Time) bool {
	start = utils.NormalizeDate(start)
	end = utils.NormalizeDate(end)
	for i := range vehicle.Bookings {
		if BookingBlocks(&vehicle.Bookings[i], start, end) {
			return false
		}
	}
	return true
}

// RentalDays returns the inclusive day count of a range; a same-day rental
// counts as one day. Inputs are normalized to midnight UTC first so the
// division is exact.
func RentalDays(start, end time.Time) int {
	start = utils.NormalizeDate(start)
	end = utils.NormalizeDate(end)
	return int(end.Sub(start)/(24*time.Hour)) + 1
}

// ComputeTotal prices a rental: inclusive days times the daily rate.
func ComputeTotal(start, end time.Time, pricePerDay float64) float64 {
	return float64(RentalDays(start, end)) * pricePerDay
}

type FleetFilterMode string

const (
	FleetFilterAll       FleetFilterMode = "all"
	FleetFilterAvailable FleetFilterMode = "available"
	FleetFilterBooked    FleetFilterMode = "booked"
)

func ValidFleetFilterMode(m FleetFilterMode) bool {
	return m == FleetFilterAll || m == FleetFilterAvailable || m == FleetFilterBooked
}

// FilterFleet classifies vehicles against a queried range. Mode "all" keeps
// everything; "available" and "booked" partition by IsAvailable.
func FilterFleet(vehicles []*models.Vehicle, start, end time.Time, mode FleetFilterMode) []*models.Vehicle {
	if mode == FleetFilterAll {
		return vehicles
	}

	wantAvailable := mode == FleetFilterAvailable
	filtered := make([]*models.Vehicle, 0, len(vehicles))
	for _, v := range vehicles {
		if IsAvailable(v, start, end) == wantAvailable {
			filtered = append(filtered, v)
		}
	}
	return filtered
}
