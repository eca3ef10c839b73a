package validators

type VehicleCreateRequest struct {
	Brand        string  `json:"brand" validate:"required,not_blank,max=50"`
	Model        string  `json:"model" validate:"required,not_blank,max=50"`
	Description  string  `json:"description" validate:"omitempty,max=2000"`
	Category     string  `json:"category" validate:"omitempty,vehicle_category"`
	Seats        int     `json:"seats" validate:"omitempty,min=1,max=12"`
	Transmission string  `json:"transmission" validate:"omitempty,transmission"`
	ImageURL     string  `json:"image_url" validate:"omitempty,max=2048"`
	LogoURL      string  `json:"logo_url" validate:"omitempty,max=2048"`
	PricePerDay  float64 `json:"price_per_day" validate:"gte=0"`
}

type VehicleUpdateRequest struct {
	Description  *string  `json:"description" validate:"omitempty,max=2000"`
	Category     *string  `json:"category" validate:"omitempty,vehicle_category"`
	Seats        *int     `json:"seats" validate:"omitempty,min=1,max=12"`
	Transmission *string  `json:"transmission" validate:"omitempty,transmission"`
	ImageURL     *string  `json:"image_url" validate:"omitempty,max=2048"`
	LogoURL      *string  `json:"logo_url" validate:"omitempty,max=2048"`
	PricePerDay  *float64 `json:"price_per_day" validate:"omitempty,gte=0"`
}

type VehicleStatusRequest struct {
	Status string `json:"status" validate:"required,vehicle_status"`
}

// FleetQueryRequest carries the availability filter. Start and End are
// calendar dates; when either is missing the mode falls back to "all".
type FleetQueryRequest struct {
	Start string `form:"start" validate:"omitempty,rental_date"`
	End   string `form:"end" validate:"omitempty,rental_date"`
	Mode  string `form:"mode" validate:"omitempty,oneof=all available booked"`
}

func ValidateVehicleCreate(req *VehicleCreateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateVehicleUpdate(req *VehicleUpdateRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateVehicleStatus(req *VehicleStatusRequest) ValidationErrors {
	return ValidateStruct(req)
}

func ValidateFleetQuery(req *FleetQueryRequest) ValidationErrors {
	errors := ValidateStruct(req)

	// A half-open range is ambiguous: require both ends or neither.
	if (req.Start == "") != (req.End == "") {
		errors = append(errors, ValidationError{
			Field:   "start",
			Tag:     "range",
			Message: "start and end must be provided together",
		})
	}

	return errors
}
