package response

import (
	"time"

	"classic-rentals/internal/data/entity"
)

// BreakdownResponse mirrors the pricing engine output line by line
type BreakdownResponse struct {
	BaseAmount          int64   `json:"baseAmount"`
	TotalAmount         int64   `json:"totalAmount"`
	DepositAmount       int64   `json:"depositAmount"`
	HourlyRate          int64   `json:"hourlyRate"`
	EffectiveHours      int     `json:"effectiveHours"`
	PackageLabel        *string `json:"packageLabel"`
	OutstationFee       int64   `json:"outstationFee"`
	RequiresManualQuote bool    `json:"requiresManualQuote"`
}

// BookingCreatedResponse is what the public form gets back after submitting
type BookingCreatedResponse struct {
	BookingID           int64  `json:"bookingId"`
	Reference           string `json:"reference"`
	TotalAmount         int64  `json:"totalAmount"`
	DepositAmount       int64  `json:"depositAmount"`
	RequiresManualQuote bool   `json:"requiresManualQuote"`
	PaymentLink         string `json:"paymentLink"`
}

type BookingResponse struct {
	ID             int64                `json:"id"`
	Reference      string               `json:"reference"`
	CustomerName   string               `json:"customerName"`
	Email          string               `json:"email"`
	Phone          string               `json:"phone"`
	EventType      *string              `json:"eventType"`
	EventDate      time.Time            `json:"eventDate"`
	Location       *string              `json:"location"`
	TowingRequired bool                 `json:"towingRequired"`
	Notes          *string              `json:"notes"`
	HoursRequested int                  `json:"hoursRequested"`
	TotalAmount    int64                `json:"totalAmount"`
	DepositAmount  int64                `json:"depositAmount"`
	Status         string               `json:"status"`
	Car            *CarResponse         `json:"car"`
	RatePackage    *RatePackageResponse `json:"ratePackage"`
	CreatedAt      time.Time            `json:"createdAt"`
}

func ToBookingResponse(booking *entity.Booking, car *entity.Car, pkg *entity.RatePackage) BookingResponse {
	resp := BookingResponse{
		ID:             booking.ID,
		Reference:      booking.Reference,
		CustomerName:   booking.CustomerName,
		Email:          booking.Email,
		Phone:          booking.Phone,
		EventType:      booking.EventType,
		EventDate:      booking.EventDate,
		Location:       booking.Location,
		TowingRequired: booking.TowingRequired,
		Notes:          booking.Notes,
		HoursRequested: booking.HoursRequested,
		TotalAmount:    booking.TotalAmount,
		DepositAmount:  booking.DepositAmount,
		Status:         string(booking.Status),
		CreatedAt:      booking.CreatedAt,
	}

	if car != nil {
		carResp := ToCarResponse(car, nil)
		resp.Car = &carResp
	}
	if pkg != nil {
		pkgResp := ToRatePackageResponse(pkg)
		resp.RatePackage = &pkgResp
	}

	return resp
}
