package models

import "time"

// BlockedSlot is a salon-wide start time blocked by hand, independent of
// bookings. Blocking never checks appointments: an admin may block an
// already-booked slot to stop further bookings.
type BlockedSlot struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:uniq_salon_blocked_slot" json:"salon_id"`

	Date string `gorm:"size:10;uniqueIndex:uniq_salon_blocked_slot" json:"date"` // YYYY-MM-DD
	Time string `gorm:"size:5;uniqueIndex:uniq_salon_blocked_slot" json:"time"`  // HH:MM

	CreatedAt time.Time `json:"created_at"`
}
