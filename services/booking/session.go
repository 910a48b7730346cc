package booking

import (
	"time"

	"glowstudio/models"
	"glowstudio/services/catalog"
	"glowstudio/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DefaultSessionService implements SessionService. One instance serves many
// client contexts; the SessionStore keys drafts by client id so each context
// holds at most one draft.
type DefaultSessionService struct {
	Catalog   *catalog.Catalog
	Ledger    BookingLedger
	Sessions  SessionStore
	Slots     SlotConfig
	DaysAhead int
	Reminders ReminderScheduler // optional
	Now       func() time.Time  // defaults to time.Now
}

func (s *DefaultSessionService) clock() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// StartBooking creates a fresh pending draft for the given service,
// discarding any prior unconfirmed draft for this client.
func (s *DefaultSessionService) StartBooking(clientID, serviceID string) (*models.Booking, error) {
	service, ok := s.Catalog.ServiceByID(serviceID)
	if !ok {
		return nil, NewNotFoundError("service %q not found", serviceID)
	}

	now := s.clock()
	session := &models.BookingSession{
		ClientID: clientID,
		Draft: models.Booking{
			ID:        "booking-" + uuid.New().String(),
			ClientID:  clientID,
			ServiceID: service.ID,
			Service:   service,
			Duration:  service.Duration,
			Status:    models.StatusPending,
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.Sessions.Put(session); err != nil {
		return nil, NewPersistenceError("failed to store booking draft: %v", err)
	}
	return &session.Draft, nil
}

// SelectStaff records the chosen staff member on the active draft. Changing
// staff after a date/time was picked is allowed and does not clear them;
// changing the service is likewise not re-validated against the staff
// specialization, callers re-query StaffForService when they need that.
func (s *DefaultSessionService) SelectStaff(clientID, staffID string) (*models.Booking, error) {
	session, err := s.activeSession(clientID)
	if err != nil {
		return nil, err
	}

	staff, ok := s.Catalog.StaffByID(staffID)
	if !ok {
		return nil, NewNotFoundError("staff member %q not found", staffID)
	}

	session.Draft.StaffID = staff.ID
	session.Draft.Staff = staff
	return s.save(session)
}

// SelectDate records the date and unconditionally clears any previously
// selected time; a time slot is only meaningful relative to its date.
func (s *DefaultSessionService) SelectDate(clientID, date string) (*models.Booking, error) {
	session, err := s.activeSession(clientID)
	if err != nil {
		return nil, err
	}
	if _, err := parseDate(date); err != nil {
		return nil, NewPreconditionError("%v", err)
	}

	session.Draft.Date = date
	session.Draft.Time = ""
	return s.save(session)
}

// SelectTime records the slot start time. It requires a previously selected
// date but deliberately does not re-check occupancy here; the authoritative
// re-check happens at Confirm to cover the offer-to-confirm race.
func (s *DefaultSessionService) SelectTime(clientID, clock string) (*models.Booking, error) {
	session, err := s.activeSession(clientID)
	if err != nil {
		return nil, err
	}
	if session.Draft.Date == "" {
		return nil, NewPreconditionError("select a date before selecting a time")
	}
	if _, err := parseClock(clock); err != nil {
		return nil, NewPreconditionError("%v", err)
	}

	session.Draft.Time = clock
	return s.save(session)
}

// SetCustomerInfo records the contact fields; comment is optional.
func (s *DefaultSessionService) SetCustomerInfo(clientID, name, phone, comment string) (*models.Booking, error) {
	session, err := s.activeSession(clientID)
	if err != nil {
		return nil, err
	}

	session.Draft.CustomerName = name
	session.Draft.CustomerPhone = phone
	session.Draft.CustomerComment = comment
	return s.save(session)
}

// IsReady reports whether service, staff, date and time are all set. Customer
// contact fields are checked separately at Confirm.
func (s *DefaultSessionService) IsReady(clientID string) bool {
	session, err := s.Sessions.Get(clientID)
	if err != nil || session == nil {
		return false
	}
	d := session.Draft
	return d.ServiceID != "" && d.StaffID != "" && d.Date != "" && d.Time != ""
}

// Confirm finalizes the draft: it re-validates the lead time, stamps the
// booking confirmed and appends it to the ledger. The ledger re-checks the
// chosen window under its own lock, so of two clients racing for one slot
// only the first lands and the second gets a conflict. On a ledger write
// failure the draft is kept so the client can retry.
func (s *DefaultSessionService) Confirm(clientID string) (*models.Booking, error) {
	session, err := s.activeSession(clientID)
	if err != nil {
		return nil, err
	}

	d := session.Draft
	if d.ServiceID == "" || d.StaffID == "" || d.Date == "" || d.Time == "" {
		return nil, NewPreconditionError("booking draft is incomplete")
	}
	if d.CustomerName == "" || d.CustomerPhone == "" {
		return nil, NewPreconditionError("customer name and phone are required")
	}

	now := s.clock()
	start, err := slotStart(d.Date, d.Time)
	if err != nil {
		return nil, NewPreconditionError("%v", err)
	}
	if start.Before(now.Add(time.Duration(s.Slots.MinLeadHours) * time.Hour)) {
		return nil, NewConflictError("slot %s on %s is past the minimum lead time", d.Time, d.Date)
	}

	d.Status = models.StatusConfirmed
	d.ConfirmedAt = now
	if err := s.Ledger.Add(d); err != nil {
		return nil, err
	}

	logger := utils.GetLogger()
	if err := s.Sessions.Delete(clientID); err != nil {
		logger.Warn("failed to clear booking draft after confirm",
			zap.String("clientID", clientID), zap.Error(err))
	}
	if s.Reminders != nil {
		if err := s.Reminders.ScheduleReminder(d); err != nil {
			logger.Warn("failed to schedule booking reminder",
				zap.String("bookingID", d.ID), zap.Error(err))
		}
	}
	return &d, nil
}

// ResetDraft discards the active draft unconditionally.
func (s *DefaultSessionService) ResetDraft(clientID string) error {
	if err := s.Sessions.Delete(clientID); err != nil {
		return NewPersistenceError("failed to discard booking draft: %v", err)
	}
	return nil
}

// AvailableSlots computes bookable start times for a staff member and date,
// using the ledger's occupied-interval view.
func (s *DefaultSessionService) AvailableSlots(staffID, date string, serviceDuration int) ([]string, error) {
	staff, ok := s.Catalog.StaffByID(staffID)
	if !ok {
		return nil, NewNotFoundError("staff member %q not found", staffID)
	}
	occupied := s.Ledger.OccupiedIntervals(staffID, date)
	return AvailableSlots(staff, date, serviceDuration, occupied, s.clock(), s.Slots)
}

// BookingDates returns the date-picker strip for a staff member.
func (s *DefaultSessionService) BookingDates(staffID string) ([]models.BookingDate, error) {
	staff, ok := s.Catalog.StaffByID(staffID)
	if !ok {
		return nil, NewNotFoundError("staff member %q not found", staffID)
	}
	return BookingDates(staff, s.clock(), s.DaysAhead), nil
}

func (s *DefaultSessionService) activeSession(clientID string) (*models.BookingSession, error) {
	session, err := s.Sessions.Get(clientID)
	if err != nil {
		return nil, NewPersistenceError("failed to load booking draft: %v", err)
	}
	if session == nil {
		return nil, NewPreconditionError("no active booking draft")
	}
	return session, nil
}

func (s *DefaultSessionService) save(session *models.BookingSession) (*models.Booking, error) {
	session.UpdatedAt = s.clock()
	if err := s.Sessions.Put(session); err != nil {
		return nil, NewPersistenceError("failed to store booking draft: %v", err)
	}
	return &session.Draft, nil
}
