package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "Confirmed"
	BookingStatusCancelled BookingStatus = "Cancelled"
)

// Booking is one reservation interval on a vehicle. Start and end are
// inclusive calendar dates normalized to midnight UTC. Bookings are never
// deleted; cancellation flips Status and keeps the record for history.
type Booking struct {
	ID           primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	CustomerName string             `json:"customer_name" bson:"customer_name" validate:"required"`
	Phone        string             `json:"phone" bson:"phone"`
	StartDate    time.Time          `json:"start_date" bson:"start_date"`
	EndDate      time.Time          `json:"end_date" bson:"end_date"`
	TotalAmount  float64            `json:"total_amount" bson:"total_amount"`
	Status       BookingStatus      `json:"status" bson:"status"`
	CreatedAt    time.Time          `json:"created_at" bson:"created_at"`
}

func ValidBookingStatus(s BookingStatus) bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled
}

func (b *Booking) IsConfirmed() bool {
	return b.Status == BookingStatusConfirmed
}
