package services

import "errors"

// Domain errors returned by the services. Handlers map these onto HTTP
// statuses: validation and range errors to 400, not-found to 404, conflicts
// to 409. Anything else is treated as an internal failure.
var (
	ErrVehicleNotFound = errors.New("vehicle not found")
	ErrBookingNotFound = errors.New("booking not found")

	// ErrInvalidDateRange covers both unparseable dates and start > end.
	ErrInvalidDateRange = errors.New("start date must be on or before end date")

	// ErrBookingConflict is returned when the requested range overlaps a
	// confirmed booking, or when an optimistic write kept losing races.
	ErrBookingConflict = errors.New("vehicle is already booked for the requested dates")

	// ErrValidation is the base class for malformed or missing input; specific
	// causes are wrapped around it with fmt.Errorf and %w.
	ErrValidation = errors.New("validation failed")

	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrNegativePrice        = errors.New("price per day must not be negative")
	ErrInvalidStatus        = errors.New("invalid status value")
)
