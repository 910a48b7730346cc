package models

import "time"

// DaySchedule is one weekday entry of a staff member's working-hours template.
// Start and End are minutes from midnight (e.g., 540 for 09:00).
type DaySchedule struct {
	Working bool `bson:"working" json:"working"`
	Start   int  `bson:"start" json:"start"`
	End     int  `bson:"end" json:"end"`
}

// WorkSchedule maps weekdays to working hours, indexed by time.Weekday
// (Sunday = 0, matching the stdlib).
type WorkSchedule [7]DaySchedule

// DayFor returns the schedule entry for the given date's weekday.
func (ws WorkSchedule) DayFor(date time.Time) DaySchedule {
	return ws[int(date.Weekday())]
}

// StaffMember is an immutable catalog entry apart from administrative
// working-hours edits, which happen outside this engine.
type StaffMember struct {
	ID             string       `bson:"id" json:"id"`
	Name           string       `bson:"name" json:"name"`
	Photo          string       `bson:"photo" json:"photo"`
	Specialization []string     `bson:"specialization" json:"specialization"` // category ids, non-empty
	Rating         float64      `bson:"rating" json:"rating"`                 // 1..5
	Schedule       WorkSchedule `bson:"schedule" json:"schedule"`
}
