package routes

import (
	"fleetrent/internal/handlers"

	"github.com/gin-gonic/gin"
)

// SetupBookingRoutes sets up reservation routes nested under a vehicle.
func SetupBookingRoutes(r *gin.RouterGroup, bookingHandler *handlers.BookingHandler) {
	bookings := r.Group("/vehicles/:id/bookings")
	{
		bookings.POST("", bookingHandler.CreateBooking)
		bookings.GET("", bookingHandler.ListBookings)
		bookings.PUT("/:bookingId/status", bookingHandler.SetBookingStatus)
		bookings.PUT("/:bookingId/cancel", bookingHandler.CancelBooking)
	}
}
