package request

type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// CarRequest is shared by create and update. Optional numeric fields use
// zero as "not set"; ImageLines holds one image per line as "url|alt text".
type CarRequest struct {
	Name             string `json:"name" validate:"required"`
	Make             string `json:"make" validate:"required"`
	Model            string `json:"model" validate:"required"`
	Year             int    `json:"year" validate:"omitempty,min=1900,max=2100"`
	Engine           string `json:"engine"`
	DisplacementCc   int    `json:"displacementCc" validate:"omitempty,gt=0"`
	Transmission     string `json:"transmission"`
	SeatingCapacity  int    `json:"seatingCapacity" validate:"omitempty,gt=0"`
	Location         string `json:"location"`
	AvailabilityNote string `json:"availabilityNote"`
	ShortDescription string `json:"shortDescription"`
	LongDescription  string `json:"longDescription"`
	HourlyRate       int64  `json:"hourlyRate" validate:"omitempty,gt=0"`
	MinimumHours     int    `json:"minimumHours" validate:"omitempty,min=1"`
	ImageLines       string `json:"imageLines"`
}

type RatePackageRequest struct {
	Label         string `json:"label" validate:"required"`
	DurationHours int    `json:"durationHours" validate:"required,min=1"`
	Price         int64  `json:"price" validate:"required,gt=0"`
	Description   string `json:"description"`
}

type OfferingRequest struct {
	Title       string `json:"title" validate:"required"`
	Summary     string `json:"summary"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type UpdateBookingStatusRequest struct {
	Status string `json:"status" validate:"required"`
}
