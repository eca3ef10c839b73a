package handlers

import (
	"errors"

	"fleetrent/internal/services"
	"fleetrent/internal/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError translates domain errors onto the HTTP surface:
// validation and range problems become 400, missing records 404, booking
// and write conflicts 409. Anything unrecognized is a 500.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrVehicleNotFound):
		utils.NotFoundResponse(c, "Vehicle")
	case errors.Is(err, services.ErrBookingNotFound):
		utils.NotFoundResponse(c, "Booking")
	case errors.Is(err, services.ErrBookingConflict):
		utils.ConflictResponse(c, err.Error())
	case errors.Is(err, services.ErrInvalidDateRange):
		utils.ErrorResponse(c, 400, "INVALID_RANGE", err.Error())
	case errors.Is(err, services.ErrCustomerNameRequired),
		errors.Is(err, services.ErrNegativePrice),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrValidation):
		utils.BadRequestResponse(c, err.Error())
	default:
		utils.InternalServerErrorResponse(c)
	}
}
