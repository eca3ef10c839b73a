package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleStatus string

const (
	VehicleStatusActive      VehicleStatus = "Active"
	VehicleStatusMaintenance VehicleStatus = "Maintenance"
)

type VehicleCategory string

const (
	CategorySedan     VehicleCategory = "Sedan"
	CategorySUV       VehicleCategory = "SUV"
	CategoryHatchback VehicleCategory = "Hatchback"
	CategoryLuxury    VehicleCategory = "Luxury"
	CategoryElectric  VehicleCategory = "Electric"
	CategoryMUV       VehicleCategory = "MUV"
)

type Transmission string

const (
	TransmissionAutomatic Transmission = "Automatic"
	TransmissionManual    Transmission = "Manual"
)

// Vehicle is a rentable car. Its bookings are embedded in the same document
// so that booking creation can be a single conditional write; Version is
// bumped on every booking mutation and guards optimistic appends.
type Vehicle struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Brand        string             `json:"brand" bson:"brand" validate:"required"`
	Model        string             `json:"model" bson:"model" validate:"required"`
	Description  string             `json:"description" bson:"description"`
	Category     VehicleCategory    `json:"category" bson:"category"`
	Seats        int                `json:"seats" bson:"seats"`
	Transmission Transmission       `json:"transmission" bson:"transmission"`
	ImageURL     string             `json:"image_url" bson:"image_url"`
	LogoURL      string             `json:"logo_url" bson:"logo_url"`
	PricePerDay  float64            `json:"price_per_day" bson:"price_per_day" validate:"gte=0"`
	Status       VehicleStatus      `json:"status" bson:"status"`
	Bookings     []Booking          `json:"bookings" bson:"bookings"`
	Version      int64              `json:"-" bson:"version"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at" bson:"updated_at"`
}

func ValidVehicleCategory(c VehicleCategory) bool {
	switch c {
	case CategorySedan, CategorySUV, CategoryHatchback, CategoryLuxury, CategoryElectric, CategoryMUV:
		return true
	}
	return false
}

func ValidVehicleStatus(s VehicleStatus) bool {
	return s == VehicleStatusActive || s == VehicleStatusMaintenance
}

func ValidTransmission(t Transmission) bool {
	return t == TransmissionAutomatic || t == TransmissionManual
}

// FindBooking returns the booking with the given ID, or nil.
func (v *Vehicle) FindBooking(bookingID primitive.ObjectID) *Booking {
	for i := range v.Bookings {
		if v.Bookings[i].ID == bookingID {
			return &v.Bookings[i]
		}
	}
	return nil
}
