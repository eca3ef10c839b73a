package handlers

import (
	"time"

	"fleetrent/internal/models"
	"fleetrent/internal/repositories/interfaces"
	"fleetrent/internal/services"
	"fleetrent/internal/utils"
	"fleetrent/internal/validators"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type VehicleHandler struct {
	vehicleService services.VehicleService
}

func NewVehicleHandler(vehicleService services.VehicleService) *VehicleHandler {
	return &VehicleHandler{
		vehicleService: vehicleService,
	}
}

// CreateVehicle adds a vehicle to the fleet
func (h *VehicleHandler) CreateVehicle(c *gin.Context) {
	var request validators.VehicleCreateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateVehicleCreate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	vehicle, err := h.vehicleService.CreateVehicle(c.Request.Context(), &services.CreateVehicleInput{
		Brand:        request.Brand,
		Model:        request.Model,
		Description:  request.Description,
		Category:     models.VehicleCategory(request.Category),
		Seats:        request.Seats,
		Transmission: models.Transmission(request.Transmission),
		ImageURL:     request.ImageURL,
		LogoURL:      request.LogoURL,
		PricePerDay:  request.PricePerDay,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, "Vehicle created successfully", vehicle)
}

// GetVehicle retrieves a single vehicle with its booking history
func (h *VehicleHandler) GetVehicle(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), vehicleID)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle retrieved successfully", vehicle)
}

// ListVehicles returns a paginated vehicle catalogue
func (h *VehicleHandler) ListVehicles(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	filter := &interfaces.VehicleFilter{
		Status:   models.VehicleStatus(c.Query("status")),
		Category: models.VehicleCategory(c.Query("category")),
	}
	if filter.Status != "" && !models.ValidVehicleStatus(filter.Status) {
		utils.BadRequestResponse(c, "Invalid status filter")
		return
	}
	if filter.Category != "" && !models.ValidVehicleCategory(filter.Category) {
		utils.BadRequestResponse(c, "Invalid category filter")
		return
	}

	vehicles, total, err := h.vehicleService.ListVehicles(c.Request.Context(), filter, params)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	meta := &utils.Meta{
		Pagination: utils.CreatePaginationMeta(params, total),
		Count:      len(vehicles),
	}
	utils.SuccessResponseWithMeta(c, "Vehicles retrieved successfully", vehicles, meta)
}

// FilterFleet classifies the active fleet for a date range
func (h *VehicleHandler) FilterFleet(c *gin.Context) {
	var request validators.FleetQueryRequest
	if err := c.ShouldBindQuery(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid query: "+err.Error())
		return
	}

	if errs := validators.ValidateFleetQuery(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	var start, end *time.Time
	if request.Start != "" && request.End != "" {
		s, err := utils.ParseDate(request.Start)
		if err != nil {
			utils.ErrorResponse(c, 400, "INVALID_RANGE", err.Error())
			return
		}
		e, err := utils.ParseDate(request.End)
		if err != nil {
			utils.ErrorResponse(c, 400, "INVALID_RANGE", err.Error())
			return
		}
		start, end = &s, &e
	}

	vehicles, err := h.vehicleService.FilterFleet(c.Request.Context(), start, end, services.FleetFilterMode(request.Mode))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	meta := &utils.Meta{Count: len(vehicles)}
	utils.SuccessResponseWithMeta(c, "Fleet retrieved successfully", vehicles, meta)
}

// UpdateVehicle edits catalogue attributes
func (h *VehicleHandler) UpdateVehicle(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	var request validators.VehicleUpdateRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateVehicleUpdate(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	input := &services.UpdateVehicleInput{
		Description: request.Description,
		Seats:       request.Seats,
		ImageURL:    request.ImageURL,
		LogoURL:     request.LogoURL,
		PricePerDay: request.PricePerDay,
	}
	if request.Category != nil {
		category := models.VehicleCategory(*request.Category)
		input.Category = &category
	}
	if request.Transmission != nil {
		transmission := models.Transmission(*request.Transmission)
		input.Transmission = &transmission
	}

	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), vehicleID, input)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle updated successfully", vehicle)
}

// SetVehicleStatus toggles Active/Maintenance
func (h *VehicleHandler) SetVehicleStatus(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	var request validators.VehicleStatusRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.BadRequestResponse(c, "Invalid request: "+err.Error())
		return
	}

	if errs := validators.ValidateVehicleStatus(&request); len(errs) > 0 {
		utils.ValidationErrorResponse(c, errs.ToMap())
		return
	}

	vehicle, err := h.vehicleService.SetVehicleStatus(c.Request.Context(), vehicleID, models.VehicleStatus(request.Status))
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle status updated successfully", vehicle)
}

// DeleteVehicle removes a vehicle and its embedded booking history
func (h *VehicleHandler) DeleteVehicle(c *gin.Context) {
	vehicleID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid vehicle ID")
		return
	}

	if err := h.vehicleService.DeleteVehicle(c.Request.Context(), vehicleID); err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Vehicle deleted successfully", nil)
}

// GetFleetStats returns counts by lifecycle status
func (h *VehicleHandler) GetFleetStats(c *gin.Context) {
	stats, err := h.vehicleService.GetFleetStats(c.Request.Context())
	if err != nil {
		handleServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, "Fleet stats retrieved successfully", stats)
}
