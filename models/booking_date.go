package models

// BookingDate describes one day of the date-picker strip shown to clients.
type BookingDate struct {
	Date      string `json:"date"` // "YYYY-MM-DD"
	DayName   string `json:"dayName"`
	DayNumber int    `json:"dayNumber"`
	Month     string `json:"month"`
	IsWorkDay bool   `json:"isWorkDay"`
	IsToday   bool   `json:"isToday"`
}
