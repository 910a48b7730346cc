package booking

import (
	"fmt"
	"sort"
	"sync"
	"time"

	ledgerRepo "glowstudio/database/repository/ledger"
	"glowstudio/models"
)

// DefaultBookingLedger implements BookingLedger over a whole-collection
// repository. The in-memory slice is the source of truth between writes;
// every mutation persists the full collection and rolls the slice back when
// the write fails, so callers never observe a half-applied change.
type DefaultBookingLedger struct {
	repo ledgerRepo.LedgerRepository
	now  func() time.Time

	mu       sync.Mutex
	bookings []models.Booking
}

// NewBookingLedger loads the stored collection and returns a ready ledger.
func NewBookingLedger(repo ledgerRepo.LedgerRepository) (*DefaultBookingLedger, error) {
	stored, err := repo.LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load booking ledger: %w", err)
	}
	return &DefaultBookingLedger{repo: repo, now: time.Now, bookings: stored}, nil
}

// Add appends a confirmed or cancelled booking and persists the collection.
// A confirmed booking is re-checked against the occupied windows under the
// same lock that guards the append, so two racing confirms for one slot
// cannot both land; the loser gets a conflict.
func (l *DefaultBookingLedger) Add(booking models.Booking) error {
	if booking.Status == models.StatusPending {
		return NewPreconditionError("draft bookings are never persisted to the ledger")
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if booking.Status == models.StatusConfirmed {
		if err := l.checkWindowLocked(booking); err != nil {
			return err
		}
	}

	l.bookings = append(l.bookings, booking)
	if err := l.repo.SaveAll(l.snapshot()); err != nil {
		l.bookings = l.bookings[:len(l.bookings)-1]
		return NewPersistenceError("failed to persist booking %s: %v", booking.ID, err)
	}
	return nil
}

// Cancel marks a confirmed booking cancelled and persists the collection.
// Unknown ids and already-cancelled bookings are a not-found failure, not a
// fatal error.
func (l *DefaultBookingLedger) Cancel(bookingID string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	idx := -1
	for i := range l.bookings {
		if l.bookings[i].ID == bookingID {
			idx = i
			break
		}
	}
	if idx < 0 || l.bookings[idx].Status == models.StatusCancelled {
		return NewNotFoundError("booking %q not found or already cancelled", bookingID)
	}

	prev := l.bookings[idx]
	l.bookings[idx].Status = models.StatusCancelled
	l.bookings[idx].CancelledAt = l.now()

	if err := l.repo.SaveAll(l.snapshot()); err != nil {
		l.bookings[idx] = prev
		return NewPersistenceError("failed to persist cancellation of %s: %v", bookingID, err)
	}
	return nil
}

// Upcoming returns confirmed bookings that start at or after now, ascending
// by date then time.
func (l *DefaultBookingLedger) Upcoming() []models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	upcoming := []models.Booking{}
	for _, b := range l.bookings {
		if b.Status == models.StatusConfirmed && !l.elapsed(b, now) {
			upcoming = append(upcoming, b)
		}
	}
	sort.Slice(upcoming, func(i, j int) bool {
		return sortKey(upcoming[i]) < sortKey(upcoming[j])
	})
	return upcoming
}

// Past returns everything not in Upcoming (cancelled bookings and confirmed
// ones whose start has elapsed), descending by date then time.
func (l *DefaultBookingLedger) Past() []models.Booking {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	past := []models.Booking{}
	for _, b := range l.bookings {
		if b.Status != models.StatusConfirmed || l.elapsed(b, now) {
			past = append(past, b)
		}
	}
	sort.Slice(past, func(i, j int) bool {
		return sortKey(past[i]) > sortKey(past[j])
	})
	return past
}

// OccupiedIntervals derives the busy ranges for one staff member on one date
// from every non-cancelled booking.
func (l *DefaultBookingLedger) OccupiedIntervals(staffID, date string) []models.OccupiedInterval {
	l.mu.Lock()
	defer l.mu.Unlock()

	intervals := []models.OccupiedInterval{}
	for _, b := range l.bookings {
		if b.Status == models.StatusCancelled || b.StaffID != staffID || b.Date != date {
			continue
		}
		start, err := parseClock(b.Time)
		if err != nil {
			continue
		}
		intervals = append(intervals, models.OccupiedInterval{Start: start, End: start + b.Duration})
	}
	return intervals
}

// checkWindowLocked rejects a booking whose window overlaps any non-cancelled
// booking for the same staff member and date. Callers must hold l.mu.
func (l *DefaultBookingLedger) checkWindowLocked(booking models.Booking) error {
	start, err := parseClock(booking.Time)
	if err != nil {
		return NewPreconditionError("%v", err)
	}
	window := models.OccupiedInterval{Start: start, End: start + booking.Duration}
	for _, b := range l.bookings {
		if b.Status == models.StatusCancelled || b.StaffID != booking.StaffID || b.Date != booking.Date {
			continue
		}
		existingStart, err := parseClock(b.Time)
		if err != nil {
			continue
		}
		if window.Overlaps(models.OccupiedInterval{Start: existingStart, End: existingStart + b.Duration}) {
			return NewConflictError("slot %s on %s is already booked", booking.Time, booking.Date)
		}
	}
	return nil
}

// snapshot copies the collection for handing to the repository, so the
// repository never aliases the ledger's own slice.
func (l *DefaultBookingLedger) snapshot() []models.Booking {
	out := make([]models.Booking, len(l.bookings))
	copy(out, l.bookings)
	return out
}

func (l *DefaultBookingLedger) elapsed(b models.Booking, now time.Time) bool {
	start, err := slotStart(b.Date, b.Time)
	if err != nil {
		return true
	}
	return start.Before(now)
}

// sortKey orders bookings chronologically; the textual forms compare
// correctly because both are zero-padded.
func sortKey(b models.Booking) string {
	return b.Date + " " + b.Time
}
