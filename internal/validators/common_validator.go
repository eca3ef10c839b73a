package validators

import (
	"fmt"
	"strings"
	"time"

	"fleetrent/internal/utils"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// Register custom validation functions
	validate.RegisterValidation("rental_date", validateRentalDate)
	validate.RegisterValidation("vehicle_category", validateVehicleCategory)
	validate.RegisterValidation("transmission", validateTransmission)
	validate.RegisterValidation("vehicle_status", validateVehicleStatus)
	validate.RegisterValidation("booking_status", validateBookingStatus)
	validate.RegisterValidation("not_blank", validateNotBlank)
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// ToMap flattens field errors for the response envelope.
func (v ValidationErrors) ToMap() map[string]string {
	m := make(map[string]string, len(v))
	for _, err := range v {
		m[err.Field] = err.Message
	}
	return m
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		for _, err := range err.(validator.ValidationErrors) {
			validationError := ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			}
			validationErrors = append(validationErrors, validationError)
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "min":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be %s or greater", err.Field(), err.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", err.Field(), err.Param())
	case "rental_date":
		return "Invalid date, expected YYYY-MM-DD"
	case "vehicle_category":
		return "Invalid vehicle category"
	case "transmission":
		return "Invalid transmission type"
	case "vehicle_status":
		return "Invalid vehicle status"
	case "booking_status":
		return "Invalid booking status"
	case "not_blank":
		return fmt.Sprintf("%s must not be blank", err.Field())
	default:
		return fmt.Sprintf("%s is invalid", err.Field())
	}
}

// Custom validation functions

func validateRentalDate(fl validator.FieldLevel) bool {
	_, err := time.ParseInLocation(utils.DateLayout, fl.Field().String(), time.UTC)
	return err == nil
}

func validateVehicleCategory(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "Sedan", "SUV", "Hatchback", "Luxury", "Electric", "MUV":
		return true
	}
	return false
}

func validateTransmission(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "Automatic" || value == "Manual"
}

func validateVehicleStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "Active" || value == "Maintenance"
}

func validateBookingStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	return value == "Confirmed" || value == "Cancelled"
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
