package models

// OccupiedInterval is a half-open time range [Start, End) during which a
// staff member is already committed to a booking. Derived from the ledger,
// never stored.
type OccupiedInterval struct {
	Start int `json:"start"` // minutes from midnight
	End   int `json:"end"`   // minutes from midnight
}

// Overlaps reports whether two half-open intervals share any minute.
func (iv OccupiedInterval) Overlaps(other OccupiedInterval) bool {
	return iv.Start < other.End && other.Start < iv.End
}
