package entity

import (
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusPaid      BookingStatus = "PAID"
	BookingStatusCompleted BookingStatus = "COMPLETED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// IsValid reports whether the status is one of the five known labels.
// Transitions themselves are admin-driven and unconstrained.
func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusPaid,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

type Booking struct {
	Base
	Reference      string        `db:"reference"`
	CustomerName   string        `db:"customer_name"`
	Email          string        `db:"email"`
	Phone          string        `db:"phone"`
	EventType      *string       `db:"event_type"`
	EventDate      time.Time     `db:"event_date"`
	Location       *string       `db:"location"`
	TowingRequired bool          `db:"towing_required"`
	Notes          *string       `db:"notes"`
	HoursRequested int           `db:"hours_requested"`
	TotalAmount    int64         `db:"total_amount"`
	DepositAmount  int64         `db:"deposit_amount"`
	Status         BookingStatus `db:"status"`
	CarID          *int64        `db:"car_id"`
	RatePackageID  *int64        `db:"rate_package_id"`
}
