package models

// ReminderPayload is the queued message for an upcoming-appointment reminder.
type ReminderPayload struct {
	BookingID     string `json:"bookingId"`
	ServiceName   string `json:"serviceName"`
	StaffName     string `json:"staffName"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
}
