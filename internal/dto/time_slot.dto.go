package dto

// TimeSlot is the per-request view of one grid position. Computed fresh on
// every call, never persisted or cached.
type TimeSlot struct {
	Time      string `json:"time"` // HH:MM
	Available bool   `json:"available"`
}

type AvailabilityDTO struct {
	Date      string     `json:"date"`
	StylistID *uint      `json:"stylist_id,omitempty"`
	Slots     []TimeSlot `json:"slots"`
	Available []string   `json:"available"`
}
