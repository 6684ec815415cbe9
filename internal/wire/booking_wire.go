package wire

import (
	"github.com/LakshayPahal/Swift-Cab/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireBooking(r chi.Router, bookingHandler *adaptor.BookingHandler) {
	r.Route("/api/bookings", func(r chi.Router) {
		// GET /api/bookings - list all bookings, newest first
		r.Get("/", bookingHandler.ListBookings)

		// POST /api/bookings - create a new booking
		r.Post("/", bookingHandler.CreateBooking)

		// GET /api/bookings/{id} - fetch one booking
		r.Get("/{id}", bookingHandler.GetBooking)

		// DELETE /api/bookings/{id} - cancel (status change, not removal)
		r.Delete("/{id}", bookingHandler.CancelBooking)

		// PATCH /api/bookings/{id}/status - set status
		r.Patch("/{id}/status", bookingHandler.UpdateBookingStatus)
	})
}
