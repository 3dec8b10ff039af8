package handler

// Request types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type createHotelRequest struct {
	Name        string   `json:"name"        validate:"required,max=200"`
	Location    string   `json:"location"    validate:"required,max=300"`
	City        string   `json:"city"        validate:"required,max=100"`
	Description string   `json:"description" validate:"omitempty,max=2000"`
	Images      []string `json:"images"`
}

type createRoomRequest struct {
	RoomType      string  `json:"room_type"       validate:"required,max=100"`
	PricePerNight float64 `json:"price_per_night" validate:"required,gt=0"`
	// Capacity defaults to 2 guests when omitted.
	Capacity int `json:"capacity" validate:"omitempty,gte=1,lte=20"`
	// IsAvailable defaults to true when omitted.
	IsAvailable *bool `json:"is_available"`
}

type createCarRequest struct {
	Make               string `json:"make"                 validate:"required,max=100"`
	Model              string `json:"model"                validate:"required,max=100"`
	LicensePlate       string `json:"license_plate"        validate:"required,max=20"`
	WithDriver         *bool  `json:"with_driver"`
	DriverLicenseImage string `json:"driver_license_image" validate:"omitempty,max=500"`
}

type createGuideRequest struct {
	Bio       string   `json:"bio"        validate:"omitempty,max=2000"`
	DailyRate float64  `json:"daily_rate" validate:"required,gt=0"`
	Languages []string `json:"languages"`
	CNICImage string   `json:"cnic_image" validate:"omitempty,max=500"`
}

type setStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending verified rejected"`
}
