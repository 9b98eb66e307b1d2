package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingStatusIsValid(t *testing.T) {
	cases := []struct {
		status BookingStatus
		valid  bool
	}{
		{BookingStatusPending, true},
		{BookingStatusConfirmed, true},
		{BookingStatusPaid, true},
		{BookingStatusCompleted, true},
		{BookingStatusCancelled, true},
		{BookingStatus(""), false},
		{BookingStatus("pending"), false},
		{BookingStatus("ARCHIVED"), false},
		{BookingStatus("DONE"), false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.valid, tc.status.IsValid(), "status %q", tc.status)
	}
}
