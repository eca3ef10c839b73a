package utils

import "time"

// Application Constants
const (
	AppName    = "FleetRent"
	AppVersion = "1.0.0"

	// Default values
	DefaultTimeZone = "UTC"
	DefaultCurrency = "USD"

	// Pagination
	DefaultPageSize = 20
	MaxPageSize     = 100
	MinPageSize     = 1

	// Rental Constants
	DateLayout          = "2006-01-02"
	DefaultSeats        = 5
	MaxRentalDays       = 90
	BookingWriteRetries = 3

	// Authentication
	JWTAccessTokenTTL = 24 * time.Hour

	// Cache
	VehicleCacheTTL = 15 * time.Minute
	FleetCacheTTL   = 2 * time.Minute
)

// HTTP Status Messages
const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// Error Messages
const (
	ErrInvalidCredentials = "invalid credentials"
	ErrInvalidToken       = "invalid token"
	ErrInternalServer     = "internal server error"
	ErrUnauthorized       = "unauthorized"
	ErrForbidden          = "forbidden"
	ErrValidationFailed   = "validation failed"
)

// Cache Keys
const (
	CacheVehiclePrefix = "vehicle:"
	CacheFleetPrefix   = "fleet:"
)
