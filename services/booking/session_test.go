package booking

import (
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	ledgerRepo "glowstudio/database/repository/ledger"
	"glowstudio/models"
	"glowstudio/services/catalog"
)

// Fixed clock: Monday 2026-03-02 12:00 local. The seeded staff-1 works
// Monday through Friday 09:00–20:00, so 2026-03-06 (Friday) is bookable.
var sessionNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.Local)

const bookableDate = "2026-03-06"

func newTestSessionService(t *testing.T, repo ledgerRepo.LedgerRepository) *DefaultSessionService {
	t.Helper()
	ledger, err := NewBookingLedger(repo)
	if err != nil {
		t.Fatalf("failed to build ledger: %v", err)
	}
	ledger.now = func() time.Time { return sessionNow }
	return &DefaultSessionService{
		Catalog:   catalog.Default(),
		Ledger:    ledger,
		Sessions:  NewMemorySessionStore(),
		Slots:     SlotConfig{SlotDuration: 30, MinLeadHours: 2},
		DaysAhead: 14,
		Now:       func() time.Time { return sessionNow },
	}
}

func fillDraft(t *testing.T, svc *DefaultSessionService, clientID, clock string) {
	t.Helper()
	if _, err := svc.StartBooking(clientID, "haircut-women"); err != nil {
		t.Fatalf("StartBooking failed: %v", err)
	}
	if _, err := svc.SelectStaff(clientID, "staff-1"); err != nil {
		t.Fatalf("SelectStaff failed: %v", err)
	}
	if _, err := svc.SelectDate(clientID, bookableDate); err != nil {
		t.Fatalf("SelectDate failed: %v", err)
	}
	if _, err := svc.SelectTime(clientID, clock); err != nil {
		t.Fatalf("SelectTime failed: %v", err)
	}
	if _, err := svc.SetCustomerInfo(clientID, "Test", "+7 (999) 000-00-00", ""); err != nil {
		t.Fatalf("SetCustomerInfo failed: %v", err)
	}
}

func TestStartBookingCreatesPendingDraft(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	draft, err := svc.StartBooking("client-1", "haircut-women")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Status != models.StatusPending {
		t.Fatalf("fresh draft should be pending, got %s", draft.Status)
	}
	if !strings.HasPrefix(draft.ID, "booking-") {
		t.Fatalf("draft id should carry the booking- prefix, got %s", draft.ID)
	}
	if draft.Service.Name != "Women's haircut" || draft.Duration != 60 {
		t.Fatalf("draft should snapshot the service: %+v", draft.Service)
	}
}

func TestStartBookingUnknownService(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	_, err := svc.StartBooking("client-1", "non-existent")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found failure, got %v", err)
	}

	session, err := svc.Sessions.Get("client-1")
	if err != nil || session != nil {
		t.Fatalf("no draft should exist after a failed start, got %+v (%v)", session, err)
	}
}

func TestStartBookingGeneratesUniqueIDs(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	first, _ := svc.StartBooking("client-1", "haircut-women")
	second, err := svc.StartBooking("client-1", "haircut-women")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first.ID == second.ID {
		t.Fatal("restarting a booking should generate a new draft id")
	}
}

func TestSelectStaffFailures(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	if _, err := svc.SelectStaff("client-1", "staff-1"); !IsPrecondition(err) {
		t.Fatalf("selecting staff without a draft should fail, got %v", err)
	}

	svc.StartBooking("client-1", "haircut-women")
	if _, err := svc.SelectStaff("client-1", "non-existent"); !IsNotFound(err) {
		t.Fatalf("unknown staff should be a not-found failure, got %v", err)
	}
}

func TestSelectDateClearsTime(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	svc.StartBooking("client-1", "haircut-women")
	svc.SelectStaff("client-1", "staff-1")
	svc.SelectDate("client-1", "2026-03-05")
	svc.SelectTime("client-1", "14:00")

	draft, err := svc.SelectDate("client-1", bookableDate)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if draft.Time != "" {
		t.Fatalf("re-selecting the date must clear the time, got %q", draft.Time)
	}
}

func TestSelectTimeRequiresDate(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	svc.StartBooking("client-1", "haircut-women")
	if _, err := svc.SelectTime("client-1", "14:00"); !IsPrecondition(err) {
		t.Fatalf("selecting a time before a date should fail, got %v", err)
	}
}

func TestIsReadyProgression(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	if svc.IsReady("client-1") {
		t.Fatal("no draft: not ready")
	}
	svc.StartBooking("client-1", "haircut-women")
	if svc.IsReady("client-1") {
		t.Fatal("service only: not ready")
	}
	svc.SelectStaff("client-1", "staff-1")
	if svc.IsReady("client-1") {
		t.Fatal("service+staff: not ready")
	}
	svc.SelectDate("client-1", bookableDate)
	if svc.IsReady("client-1") {
		t.Fatal("service+staff+date: not ready")
	}
	svc.SelectTime("client-1", "14:00")
	if !svc.IsReady("client-1") {
		t.Fatal("all selections made: should be ready")
	}
}

func TestConfirmFailsWithoutDraft(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	if _, err := svc.Confirm("client-1"); !IsPrecondition(err) {
		t.Fatalf("confirm without a draft should fail, got %v", err)
	}
}

func TestConfirmFailsOnIncompleteDraft(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	svc.StartBooking("client-1", "haircut-women")
	svc.SelectStaff("client-1", "staff-1")
	svc.SelectDate("client-1", bookableDate)
	if _, err := svc.Confirm("client-1"); !IsPrecondition(err) {
		t.Fatalf("confirm without a time should fail, got %v", err)
	}
}

func TestConfirmRequiresCustomerInfo(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	svc.StartBooking("client-1", "haircut-women")
	svc.SelectStaff("client-1", "staff-1")
	svc.SelectDate("client-1", bookableDate)
	svc.SelectTime("client-1", "14:00")
	if _, err := svc.Confirm("client-1"); !IsPrecondition(err) {
		t.Fatalf("confirm without contact info should fail, got %v", err)
	}
}

func TestConfirmSuccessResetsDraft(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	fillDraft(t, svc, "client-1", "14:00")
	confirmed, err := svc.Confirm("client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if confirmed.Status != models.StatusConfirmed {
		t.Fatalf("expected confirmed status, got %s", confirmed.Status)
	}
	if confirmed.ClientID != "client-1" {
		t.Fatalf("booking should carry the confirming client id, got %q", confirmed.ClientID)
	}
	if !confirmed.ConfirmedAt.Equal(sessionNow) {
		t.Fatalf("confirmedAt should be stamped with now, got %v", confirmed.ConfirmedAt)
	}

	if session, _ := svc.Sessions.Get("client-1"); session != nil {
		t.Fatal("draft should be cleared after confirm")
	}
	upcoming := svc.Ledger.Upcoming()
	if len(upcoming) != 1 || upcoming[0].ID != confirmed.ID {
		t.Fatalf("confirmed booking should be in the ledger: %+v", upcoming)
	}
}

func TestConfirmedBookingBlocksSlots(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	fillDraft(t, svc, "client-1", "14:00")
	if _, err := svc.Confirm("client-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	slots, err := svc.AvailableSlots("staff-1", bookableDate, 30)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The 60-minute haircut occupies 14:00–15:00, so both half-hour starts
	// inside it disappear.
	if contains(slots, "14:00") || contains(slots, "14:30") {
		t.Fatalf("occupied slots leaked back into availability: %v", slots)
	}
}

func TestConfirmConflictBetweenSessions(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	fillDraft(t, svc, "client-1", "14:00")
	fillDraft(t, svc, "client-2", "14:00")

	if _, err := svc.Confirm("client-1"); err != nil {
		t.Fatalf("first confirm should succeed: %v", err)
	}
	_, err := svc.Confirm("client-2")
	if !IsConflict(err) {
		t.Fatalf("second confirm for the same slot should conflict, got %v", err)
	}
	if len(svc.Ledger.Upcoming()) != 1 {
		t.Fatal("the conflicting confirm must not create a duplicate booking")
	}
}

func TestConfirmRaceHasSingleWinner(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	fillDraft(t, svc, "client-1", "14:00")
	fillDraft(t, svc, "client-2", "14:00")

	// Both goroutines confirm the same window in parallel. The ledger checks
	// occupancy and appends under one lock, so exactly one may land no matter
	// how the scheduler interleaves them.
	errs := make([]error, 2)
	var wg sync.WaitGroup
	for i, id := range []string{"client-1", "client-2"} {
		wg.Add(1)
		go func(i int, id string) {
			defer wg.Done()
			_, errs[i] = svc.Confirm(id)
		}(i, id)
	}
	wg.Wait()

	successes, conflicts := 0, 0
	for _, err := range errs {
		switch {
		case err == nil:
			successes++
		case IsConflict(err):
			conflicts++
		default:
			t.Fatalf("unexpected confirm outcome: %v", err)
		}
	}
	if successes != 1 || conflicts != 1 {
		t.Fatalf("expected one winner and one conflict, got %d/%d", successes, conflicts)
	}
	if got := len(svc.Ledger.Upcoming()); got != 1 {
		t.Fatalf("racing confirms created %d bookings for one slot", got)
	}
}

func TestConfirmReValidatesLeadTime(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	// 13:00 today is only one hour from the fixed 12:00 clock, inside the
	// 2-hour minimum lead.
	svc.StartBooking("client-1", "haircut-women")
	svc.SelectStaff("client-1", "staff-1")
	svc.SelectDate("client-1", "2026-03-02")
	svc.SelectTime("client-1", "13:00")
	svc.SetCustomerInfo("client-1", "Test", "+7 (999) 000-00-00", "")

	if _, err := svc.Confirm("client-1"); !IsConflict(err) {
		t.Fatalf("confirm inside the lead-time window should conflict, got %v", err)
	}
}

func TestCancelFreesSlot(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	fillDraft(t, svc, "client-1", "14:00")
	confirmed, err := svc.Confirm("client-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	before, _ := svc.AvailableSlots("staff-1", bookableDate, 60)
	if contains(before, "14:00") {
		t.Fatal("slot should be blocked while the booking stands")
	}

	if err := svc.Ledger.Cancel(confirmed.ID); err != nil {
		t.Fatalf("cancel failed: %v", err)
	}

	after, err := svc.AvailableSlots("staff-1", bookableDate, 60)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !contains(after, "14:00") {
		t.Fatalf("cancelled slot should be offered again: %v", after)
	}
}

type failingRepo struct {
	saveErr error
}

func (r *failingRepo) LoadAll() ([]models.Booking, error) { return nil, nil }
func (r *failingRepo) SaveAll([]models.Booking) error     { return r.saveErr }

func TestConfirmPersistenceFailureKeepsDraft(t *testing.T) {
	svc := newTestSessionService(t, &failingRepo{saveErr: errors.New("disk on fire")})

	fillDraft(t, svc, "client-1", "14:00")
	_, err := svc.Confirm("client-1")
	if !IsPersistence(err) {
		t.Fatalf("expected persistence failure, got %v", err)
	}

	if !svc.IsReady("client-1") {
		t.Fatal("draft must survive a failed ledger write so the client can retry")
	}
	if len(svc.Ledger.Upcoming()) != 0 {
		t.Fatal("no booking may be visible after a failed write")
	}
}

func TestResetDraft(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	svc.StartBooking("client-1", "haircut-women")
	if err := svc.ResetDraft("client-1"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session, _ := svc.Sessions.Get("client-1"); session != nil {
		t.Fatal("draft should be gone after reset")
	}
}

func TestAvailableSlotsUnknownStaff(t *testing.T) {
	svc := newTestSessionService(t, ledgerRepo.NewMemoryLedgerRepo())

	if _, err := svc.AvailableSlots("non-existent", bookableDate, 60); !IsNotFound(err) {
		t.Fatalf("expected not-found failure, got %v", err)
	}
}
