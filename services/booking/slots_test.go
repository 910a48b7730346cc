package booking

import (
	"reflect"
	"testing"
	"time"

	"glowstudio/models"
)

// 2026-03-02 is a Monday; the fixed clock keeps every slot test deterministic.
var slotsNow = time.Date(2026, time.March, 2, 12, 0, 0, 0, time.Local)

var slotsCfg = SlotConfig{SlotDuration: 30, MinLeadHours: 2}

func everydayStaff(start, end int) models.StaffMember {
	var ws models.WorkSchedule
	for i := range ws {
		ws[i] = models.DaySchedule{Working: true, Start: start, End: end}
	}
	return models.StaffMember{ID: "staff-test", Name: "Anna", Schedule: ws}
}

func contains(slots []string, want string) bool {
	for _, s := range slots {
		if s == want {
			return true
		}
	}
	return false
}

func TestAvailableSlotsFullDay(t *testing.T) {
	staff := everydayStaff(9*60, 20*60)

	slots, err := AvailableSlots(staff, "2026-03-07", 60, nil, slotsNow, slotsCfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected slots for an open day")
	}
	if slots[0] != "09:00" {
		t.Fatalf("first slot should be 09:00, got %s", slots[0])
	}
	if !contains(slots, "14:00") {
		t.Fatal("expected 14:00 to be offered")
	}
	// 19:00 + 60min ends exactly at closing; 19:30 would spill over.
	if !contains(slots, "19:00") {
		t.Fatal("expected the last full slot 19:00")
	}
	if contains(slots, "19:30") {
		t.Fatal("19:30 does not fit a 60-minute service before closing")
	}
}

func TestAvailableSlotsExcludesBookedWindow(t *testing.T) {
	staff := everydayStaff(9*60, 20*60)
	occupied := []models.OccupiedInterval{{Start: 14 * 60, End: 15 * 60}}

	slots, err := AvailableSlots(staff, "2026-03-07", 30, occupied, slotsNow, slotsCfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if contains(slots, "14:00") || contains(slots, "14:30") {
		t.Fatalf("booked window leaked into slots: %v", slots)
	}
	if !contains(slots, "13:30") || !contains(slots, "15:00") {
		t.Fatalf("adjacent slots should stay available: %v", slots)
	}
}

func TestAvailableSlotsNeverOverlapOccupied(t *testing.T) {
	staff := everydayStaff(9*60, 20*60)
	occupied := []models.OccupiedInterval{
		{Start: 10 * 60, End: 11*60 + 30},
		{Start: 13 * 60, End: 14 * 60},
		{Start: 17*60 + 30, End: 18 * 60},
	}

	for _, duration := range []int{30, 60, 90} {
		slots, err := AvailableSlots(staff, "2026-03-07", duration, occupied, slotsNow, slotsCfg)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		for _, s := range slots {
			start, err := parseClock(s)
			if err != nil {
				t.Fatalf("slot %q is not a clock value: %v", s, err)
			}
			window := models.OccupiedInterval{Start: start, End: start + duration}
			for _, iv := range occupied {
				if window.Overlaps(iv) {
					t.Fatalf("slot %s (duration %d) overlaps occupied %+v", s, duration, iv)
				}
			}
		}
	}
}

func TestAvailableSlotsNonWorkingDay(t *testing.T) {
	staff := everydayStaff(9*60, 20*60)
	staff.Schedule[int(time.Sunday)] = models.DaySchedule{}

	// 2026-03-08 is a Sunday.
	slots, err := AvailableSlots(staff, "2026-03-08", 60, nil, slotsNow, slotsCfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("non-working day should have no slots, got %v", slots)
	}
}

func TestAvailableSlotsPastDate(t *testing.T) {
	staff := everydayStaff(9*60, 20*60)

	slots, err := AvailableSlots(staff, "2026-02-20", 60, nil, slotsNow, slotsCfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) != 0 {
		t.Fatalf("past date should have no slots, got %v", slots)
	}
}

func TestAvailableSlotsLeadTime(t *testing.T) {
	staff := everydayStaff(9*60, 20*60)

	// Same day as the fixed clock (12:00): with a 2-hour lead only slots
	// from 14:00 onward qualify.
	slots, err := AvailableSlots(staff, "2026-03-02", 30, nil, slotsNow, slotsCfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(slots) == 0 {
		t.Fatal("expected afternoon slots")
	}
	if slots[0] != "14:00" {
		t.Fatalf("lead time should push the first slot to 14:00, got %s", slots[0])
	}
}

func TestAvailableSlotsInvalidDuration(t *testing.T) {
	staff := everydayStaff(9*60, 20*60)

	for _, duration := range []int{0, -15} {
		if _, err := AvailableSlots(staff, "2026-03-07", duration, nil, slotsNow, slotsCfg); err == nil {
			t.Fatalf("duration %d should be rejected", duration)
		}
	}
}

func TestAvailableSlotsIdempotent(t *testing.T) {
	staff := everydayStaff(9*60, 20*60)
	occupied := []models.OccupiedInterval{{Start: 11 * 60, End: 12 * 60}}
	occupiedBefore := make([]models.OccupiedInterval, len(occupied))
	copy(occupiedBefore, occupied)

	first, err := AvailableSlots(staff, "2026-03-07", 60, occupied, slotsNow, slotsCfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := AvailableSlots(staff, "2026-03-07", 60, occupied, slotsNow, slotsCfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("identical inputs produced different slots: %v vs %v", first, second)
	}
	if !reflect.DeepEqual(occupied, occupiedBefore) {
		t.Fatalf("occupied intervals were mutated: %v", occupied)
	}
}

func TestBookingDates(t *testing.T) {
	staff := everydayStaff(9*60, 20*60)
	staff.Schedule[int(time.Sunday)] = models.DaySchedule{}

	dates := BookingDates(staff, slotsNow, 14)
	if len(dates) != 14 {
		t.Fatalf("expected 14 dates, got %d", len(dates))
	}
	if !dates[0].IsToday || dates[0].Date != "2026-03-02" {
		t.Fatalf("first date should be today: %+v", dates[0])
	}
	for _, d := range dates {
		// 2026-03-08 and 2026-03-15 are Sundays.
		if (d.Date == "2026-03-08" || d.Date == "2026-03-15") && d.IsWorkDay {
			t.Fatalf("Sunday %s should not be a work day", d.Date)
		}
	}
}
