package wire

import (
	"autohub-service/internal/adaptor"
	"autohub-service/pkg/middleware"
	"autohub-service/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireBooking(
	r chi.Router,
	bookingHandler *adaptor.BookingHandler,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))

		// POST /api/bookings - Submit a booking
		r.Post("/api/bookings", bookingHandler.CreateBooking)

		// GET /api/user/bookings - Caller's booking history with catalog details
		r.Get("/api/user/bookings", bookingHandler.GetUserBookings)
	})

	// ==================== PUBLIC ROUTES ====================
	// Single booking lookup; IDs are unguessable UUIDs.
	r.Get("/api/bookings/{id}", bookingHandler.GetBooking)

	// ==================== ADMIN ROUTES ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.Auth(config.JWT, log))
		r.Use(middleware.Admin(log))

		// GET /api/bookings - All bookings with customer and catalog details
		r.Get("/api/bookings", bookingHandler.GetAllBookings)

		// PUT /api/bookings/{id} - Accept, reject or complete a booking
		r.Put("/api/bookings/{id}", bookingHandler.UpdateBookingStatus)

		// DELETE /api/bookings/{id} - Remove a booking record
		r.Delete("/api/bookings/{id}", bookingHandler.DeleteBooking)
	})
}
