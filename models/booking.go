package models

import "time"

// Booking status values. A pending booking is a draft held by the active
// session only; the ledger stores confirmed and cancelled bookings.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
)

// Booking represents one appointment. Service and Staff are denormalized
// snapshots taken when the draft is created, so later catalog edits never
// retroactively alter an existing booking; Duration is copied from the
// service at draft creation for the same reason.
type Booking struct {
	ID              string      `bson:"id" json:"id"`
	ClientID        string      `bson:"client_id,omitempty" json:"clientId,omitempty"`
	ServiceID       string      `bson:"service_id" json:"serviceId"`
	Service         Service     `bson:"service" json:"service"`
	StaffID         string      `bson:"staff_id,omitempty" json:"staffId,omitempty"`
	Staff           StaffMember `bson:"staff,omitempty" json:"staff,omitzero"`
	Date            string      `bson:"date,omitempty" json:"date,omitempty"` // "YYYY-MM-DD"
	Time            string      `bson:"time,omitempty" json:"time,omitempty"` // "HH:MM", slot start
	Duration        int         `bson:"duration" json:"duration"`             // minutes
	CustomerName    string      `bson:"customer_name,omitempty" json:"customerName,omitempty"`
	CustomerPhone   string      `bson:"customer_phone,omitempty" json:"customerPhone,omitempty"`
	CustomerComment string      `bson:"customer_comment,omitempty" json:"customerComment,omitempty"`
	Status          string      `bson:"status" json:"status"`
	ConfirmedAt     time.Time   `bson:"confirmed_at,omitempty" json:"confirmedAt,omitzero"`
	CancelledAt     time.Time   `bson:"cancelled_at,omitempty" json:"cancelledAt,omitzero"`
}
