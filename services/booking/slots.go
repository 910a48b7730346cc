package booking

import (
	"fmt"
	"time"

	"glowstudio/models"
)

// SlotConfig carries the schedule knobs used by the slot calculator.
type SlotConfig struct {
	SlotDuration int // candidate granularity, minutes
	MinLeadHours int // minimum hours between now and a bookable start
}

// AvailableSlots computes the ordered "HH:MM" start times a client can book
// for one staff member on one date. Candidates step through the staff
// member's working hours at SlotDuration granularity; a candidate survives
// when its full service window fits before closing time, starts at least
// MinLeadHours after now, and does not overlap any occupied interval.
//
// Inputs are never mutated, so the function is safe to call repeatedly with
// shared interval slices. A non-positive duration is a contract violation and
// returns a hard error rather than an empty result.
func AvailableSlots(
	staff models.StaffMember,
	date string,
	serviceDuration int,
	occupied []models.OccupiedInterval,
	now time.Time,
	cfg SlotConfig,
) ([]string, error) {
	if serviceDuration <= 0 {
		return nil, fmt.Errorf("service duration must be positive, got %d", serviceDuration)
	}
	if cfg.SlotDuration <= 0 {
		return nil, fmt.Errorf("slot granularity must be positive, got %d", cfg.SlotDuration)
	}

	day, err := parseDate(date)
	if err != nil {
		return nil, err
	}

	sched := staff.Schedule.DayFor(day)
	if !sched.Working {
		return []string{}, nil
	}

	earliest := now.Add(time.Duration(cfg.MinLeadHours) * time.Hour)
	slots := []string{}

	for start := sched.Start; start+serviceDuration <= sched.End; start += cfg.SlotDuration {
		absStart := day.Add(time.Duration(start) * time.Minute)
		if absStart.Before(earliest) {
			continue
		}

		window := models.OccupiedInterval{Start: start, End: start + serviceDuration}
		blocked := false
		for _, iv := range occupied {
			if window.Overlaps(iv) {
				blocked = true
				break
			}
		}
		if !blocked {
			slots = append(slots, formatClock(start))
		}
	}

	return slots, nil
}
