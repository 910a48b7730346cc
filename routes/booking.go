package routes

import (
	"glowstudio/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking engine.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", h.StartBookingHandler)           // step 1: pick a service
		booking.PUT("/session/staff", h.SelectStaffHandler)       // step 2: pick a staff member
		booking.PUT("/session/date", h.SelectDateHandler)         // step 3: pick a date
		booking.PUT("/session/time", h.SelectTimeHandler)         // step 4: pick a time slot
		booking.PUT("/session/customer", h.SetCustomerInfoHandler) // step 5: contact info
		booking.GET("/session/ready", h.GetReadyHandler)
		booking.POST("/session/confirm", h.ConfirmHandler)
		booking.DELETE("/session", h.ResetDraftHandler)

		booking.GET("/slots", h.GetSlotsHandler)
		booking.GET("/dates", h.GetDatesHandler)

		booking.GET("/bookings/upcoming", h.GetUpcomingHandler)
		booking.GET("/bookings/past", h.GetPastHandler)
		booking.POST("/bookings/:id/cancel", h.CancelBookingHandler)
	}
}
