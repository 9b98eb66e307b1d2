package request

// CreateBookingRequest carries the public booking form. Field names follow
// the form inputs. Zero hoursRequested/carId/ratePackageId mean "not
// provided".
type CreateBookingRequest struct {
	CustomerName   string `json:"customerName" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Phone          string `json:"phone" validate:"required"`
	EventType      string `json:"eventType"`
	EventDate      string `json:"eventDate" validate:"required"`
	Location       string `json:"location"`
	TowingRequired bool   `json:"towingRequired"`
	Notes          string `json:"notes"`
	HoursRequested int    `json:"hoursRequested" validate:"omitempty,min=1,max=24"`
	CarID          int64  `json:"carId" validate:"omitempty,gt=0"`
	RatePackageID  int64  `json:"ratePackageId" validate:"omitempty,gt=0"`
}

// QuoteRequest previews a price breakdown without persisting anything
type QuoteRequest struct {
	HoursRequested int   `json:"hoursRequested" validate:"omitempty,min=1,max=24"`
	CarID          int64 `json:"carId" validate:"omitempty,gt=0"`
	RatePackageID  int64 `json:"ratePackageId" validate:"omitempty,gt=0"`
	TowingRequired bool  `json:"towingRequired"`
}
