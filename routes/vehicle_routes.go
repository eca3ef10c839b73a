package routes

import (
	"fleetrent/internal/handlers"
	"fleetrent/internal/middleware"

	"github.com/gin-gonic/gin"
)

// SetupVehicleRoutes sets up routes for fleet management. Reads are public;
// catalogue mutations require an admin token.
func SetupVehicleRoutes(r *gin.RouterGroup, vehicleHandler *handlers.VehicleHandler, jwtSecret string) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.GET("", vehicleHandler.ListVehicles)
		vehicles.GET("/fleet", vehicleHandler.FilterFleet)
		vehicles.GET("/:id", vehicleHandler.GetVehicle)
	}

	admin := r.Group("/vehicles")
	admin.Use(middleware.AuthRequired(jwtSecret), middleware.AdminRequired())
	{
		admin.POST("", vehicleHandler.CreateVehicle)
		admin.GET("/stats", vehicleHandler.GetFleetStats)
		admin.PUT("/:id", vehicleHandler.UpdateVehicle)
		admin.PUT("/:id/status", vehicleHandler.SetVehicleStatus)
		admin.DELETE("/:id", vehicleHandler.DeleteVehicle)
	}
}
