package handlers

import (
	"fleetrent/internal/models"
	"fleetrent/internal/services"
	"fleetrent/internal/utils"
	"fleetrent/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingHandler struct {
	bookingService services.BookingService
}

func NewBookingHandler(bookingService services.BookingService) *BookingHandler {
	return &BookingHandler{
		bookingService: bookingService,
	}
}

// CreateBooking reserves a date range on a vehicle
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	var request validators.BookingCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateBookingCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	start, end, err := request.DateRange()
	if err != nil {
		utils.ErrorResponse(c, 400, "INVALID_RANGE", err.Error())
		return
	}

	booking, err := h.bookingService.CreateBooking(c.Request.Context(), vehicleID, &services.CreateBookingInput{
		CustomerName:  request.CustomerName,
		Phone:         request.Phone,
		StartDate:     start,
		EndDate:       end,
		PriceOverride: request.PricePerDay,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Booking created successfully", booking)
}

// ListBookings returns the vehicle's full booking history
func (h *BookingHandler) ListBookings(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	bookings, err := h.bookingService.ListBookings(c.Request.Context(), vehicleID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	meta := &utils.Meta{Count: len(bookings)}
	utils.SuccessResponseWithMeta(c, "Bookings retrieved successfully", bookings, meta)
}

// SetBookingStatus toggles Confirmed/Cancelled
func (h *BookingHandler) SetBookingStatus(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("bookingId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	var request validators.BookingStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateBookingStatus(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	booking, err := h.bookingService.SetBookingStatus(c.Request.Context(), vehicleID, bookingID, models.BookingStatus(request.Status))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Booking status updated successfully", booking)
}

// CancelBooking marks a booking Cancelled; repeating it is a no-op
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	bookingID, err := primitive.ObjectIDFromHex(c.Param("bookingId"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid booking ID")
		return
	}

	booking, err := h.bookingService.CancelBooking(c.Request.Context(), vehicleID, bookingID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Booking cancelled successfully", booking)
}
