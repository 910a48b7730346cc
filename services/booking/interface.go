package booking

import "glowstudio/models"

// SessionService drives one client's booking flow through its selection
// steps. All expected business failures come back as *Error values; see
// errors.go for the codes.
type SessionService interface {
	StartBooking(clientID, serviceID string) (*models.Booking, error)
	SelectStaff(clientID, staffID string) (*models.Booking, error)
	SelectDate(clientID, date string) (*models.Booking, error)
	SelectTime(clientID, clock string) (*models.Booking, error)
	SetCustomerInfo(clientID, name, phone, comment string) (*models.Booking, error)
	IsReady(clientID string) bool
	Confirm(clientID string) (*models.Booking, error)
	ResetDraft(clientID string) error
	AvailableSlots(staffID, date string, serviceDuration int) ([]string, error)
	BookingDates(staffID string) ([]models.BookingDate, error)
}

// BookingLedger is the durable collection of confirmed and cancelled bookings.
// Add performs the occupancy re-check for confirmed bookings atomically with
// the append; an overlapping window comes back as a conflict.
type BookingLedger interface {
	Add(booking models.Booking) error
	Cancel(bookingID string) error
	Upcoming() []models.Booking
	Past() []models.Booking
	OccupiedIntervals(staffID, date string) []models.OccupiedInterval
}

// SessionStore persists the single active draft per client context.
// Get returns (nil, nil) when the client has no draft.
type SessionStore interface {
	Get(clientID string) (*models.BookingSession, error)
	Put(session *models.BookingSession) error
	Delete(clientID string) error
}

// ReminderScheduler queues an appointment reminder for a confirmed booking.
// Scheduling is best-effort: a failure is logged, never surfaced to the client.
type ReminderScheduler interface {
	ScheduleReminder(booking models.Booking) error
}
