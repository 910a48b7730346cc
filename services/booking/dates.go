package booking

import (
	"time"

	"glowstudio/models"
)

// BookingDates builds the date-picker strip for a staff member: daysAhead
// consecutive days starting today, flagged with the staff member's working
// days so the UI can grey out the rest.
func BookingDates(staff models.StaffMember, now time.Time, daysAhead int) []models.BookingDate {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dates := make([]models.BookingDate, 0, daysAhead)

	for i := 0; i < daysAhead; i++ {
		d := today.AddDate(0, 0, i)
		dates = append(dates, models.BookingDate{
			Date:      d.Format(dateLayout),
			DayName:   d.Weekday().String(),
			DayNumber: d.Day(),
			Month:     d.Month().String(),
			IsWorkDay: staff.Schedule.DayFor(d).Working,
			IsToday:   i == 0,
		})
	}
	return dates
}
