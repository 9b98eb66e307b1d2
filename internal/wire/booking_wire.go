package wire

import (
	"classic-rentals/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Post("/api/bookings", bookingHandler.SubmitBooking)
	r.Post("/api/bookings/quote", bookingHandler.QuoteBooking)
	r.Get("/api/bookings/{id}", bookingHandler.GetBooking)
}
