package ledgerRepo

import (
	"sync"

	"glowstudio/models"
)

// MemoryLedgerRepo implements LedgerRepository in process memory. It backs
// the demo binary when no MongoDB is configured, and the test suites.
type MemoryLedgerRepo struct {
	mu       sync.Mutex
	bookings []models.Booking
}

// NewMemoryLedgerRepo returns an empty in-memory repository, optionally
// pre-populated with seed bookings.
func NewMemoryLedgerRepo(seed ...models.Booking) *MemoryLedgerRepo {
	repo := &MemoryLedgerRepo{}
	repo.bookings = append(repo.bookings, seed...)
	return repo
}

func (repo *MemoryLedgerRepo) LoadAll() ([]models.Booking, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	out := make([]models.Booking, len(repo.bookings))
	copy(out, repo.bookings)
	return out, nil
}

func (repo *MemoryLedgerRepo) SaveAll(bookings []models.Booking) error {
	repo.mu.Lock()
	defer repo.mu.Unlock()
	repo.bookings = make([]models.Booking, len(bookings))
	copy(repo.bookings, bookings)
	return nil
}
