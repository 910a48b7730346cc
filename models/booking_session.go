package models

import "time"

// BookingSession holds the single in-progress draft for one client context.
// There is at most one session per client; starting a new booking replaces
// any unconfirmed draft.
type BookingSession struct {
	ClientID  string    `json:"clientId"`
	Draft     Booking   `json:"draft"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
