package ledgerRepo

import "glowstudio/models"

// LedgerRepository persists the booking ledger as a whole collection.
// Both operations are atomic from the caller's perspective: a failed SaveAll
// leaves the previously stored collection intact.
type LedgerRepository interface {
	LoadAll() ([]models.Booking, error)
	SaveAll(bookings []models.Booking) error
}
