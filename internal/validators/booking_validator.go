package validators

import (
	"time"

	"fleetrent/internal/utils"
)

type BookingCreateRequest struct {
	CustomerName string   `json:"customer_name" validate:"required,not_blank,max=100"`
	Phone        string   `json:"phone" validate:"omitempty,max=20"`
	StartDate    string   `json:"start_date" validate:"required,rental_date"`
	EndDate      string   `json:"end_date" validate:"required,rental_date"`
	PricePerDay  *float64 `json:"price_per_day" validate:"omitempty,gte=0"`
}

type BookingStatusRequest struct {
	Status string `json:"status" validate:"required,booking_status"`
}

func ValidateBookingCreate(req *BookingCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateBookingStatus(req *BookingStatusRequest) ValidationErrors {
	return ValidateStruct(req)
}

// DateRange parses the request's calendar dates. Call after validation; the
// error path still guards against handlers skipping ValidateBookingCreate.
func (req *BookingCreateRequest) DateRange() (start, end time.Time, err error) {
	start, err = utils.ParseDate(req.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err = utils.ParseDate(req.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}
