package catalog

import (
	"time"

	"glowstudio/models"
)

// Default returns the studio catalog shipped with the demo deployment.
func Default() *Catalog {
	return New(seedCategories(), seedServices(), seedStaff())
}

func seedCategories() []models.Category {
	return []models.Category{
		{ID: "hair", Name: "Hair", Icon: "💇"},
		{ID: "nails", Name: "Nails", Icon: "💅"},
		{ID: "makeup", Name: "Makeup", Icon: "💄"},
	}
}

func seedServices() []models.Service {
	return []models.Service{
		{
			ID: "haircut-women", Name: "Women's haircut", Price: 1500, Duration: 60,
			Category: "hair", Description: "Cut and styling for any hair length",
			Image: "images/haircut-women.jpg",
		},
		{
			ID: "haircut-men", Name: "Men's haircut", Price: 1000, Duration: 45,
			Category: "hair", Description: "Classic or machine cut with styling",
			Image: "images/haircut-men.jpg",
		},
		{
			ID: "coloring", Name: "Full coloring", Price: 3500, Duration: 120,
			Category: "hair", Description: "Single-tone coloring with professional dye",
			Image: "images/coloring.jpg",
		},
		{
			ID: "manicure", Name: "Classic manicure", Price: 1200, Duration: 60,
			Category: "nails", Description: "Trimmed manicure with gel polish",
			Image: "images/manicure.jpg",
		},
		{
			ID: "pedicure", Name: "Pedicure", Price: 1500, Duration: 90,
			Category: "nails", Description: "Full pedicure with coating",
			Image: "images/pedicure.jpg",
		},
		{
			ID: "makeup-day", Name: "Day makeup", Price: 2000, Duration: 60,
			Category: "makeup", Description: "Natural look for every day",
			Image: "images/makeup-day.jpg",
		},
	}
}

func seedStaff() []models.StaffMember {
	return []models.StaffMember{
		{
			ID: "staff-1", Name: "Anna Ivanova", Photo: "images/staff-anna.jpg",
			Specialization: []string{"hair"}, Rating: 4.9,
			Schedule: weekSchedule(9*60, 20*60,
				time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday),
		},
		{
			ID: "staff-2", Name: "Maria Petrova", Photo: "images/staff-maria.jpg",
			Specialization: []string{"hair", "makeup"}, Rating: 4.7,
			Schedule: weekSchedule(10*60, 19*60,
				time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday),
		},
		{
			ID: "staff-3", Name: "Elena Sokolova", Photo: "images/staff-elena.jpg",
			Specialization: []string{"nails"}, Rating: 4.8,
			Schedule: weekSchedule(9*60, 18*60,
				time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday),
		},
	}
}

// weekSchedule builds a working-hours template with identical hours on the
// listed weekdays. Start and end are minutes from midnight.
func weekSchedule(start, end int, days ...time.Weekday) models.WorkSchedule {
	var ws models.WorkSchedule
	for _, day := range days {
		ws[int(day)] = models.DaySchedule{Working: true, Start: start, End: end}
	}
	return ws
}

// DemoBookings returns a handful of confirmed bookings relative to now, so a
// fresh in-memory deployment has visibly occupied slots.
func DemoBookings(now time.Time) []models.Booking {
	catalog := Default()
	haircut, _ := catalog.ServiceByID("haircut-women")
	manicure, _ := catalog.ServiceByID("manicure")
	anna, _ := catalog.StaffByID("staff-1")
	elena, _ := catalog.StaffByID("staff-3")

	tomorrow := now.AddDate(0, 0, 1).Format("2006-01-02")
	return []models.Booking{
		{
			ID: "booking-demo-1", ClientID: "client-demo-1", ServiceID: haircut.ID, Service: haircut,
			StaffID: anna.ID, Staff: anna, Date: tomorrow, Time: "10:00",
			Duration: haircut.Duration, CustomerName: "Olga", CustomerPhone: "+7 (900) 111-22-33",
			Status: models.StatusConfirmed, ConfirmedAt: now,
		},
		{
			ID: "booking-demo-2", ClientID: "client-demo-2", ServiceID: manicure.ID, Service: manicure,
			StaffID: elena.ID, Staff: elena, Date: tomorrow, Time: "12:00",
			Duration: manicure.Duration, CustomerName: "Irina", CustomerPhone: "+7 (900) 444-55-66",
			Status: models.StatusConfirmed, ConfirmedAt: now,
		},
	}
}
