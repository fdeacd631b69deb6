package models

import "time"

// ClosedDate: the salon is fully closed regardless of the weekly template.
type ClosedDate struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:uniq_salon_closed_date" json:"salon_id"`

	Date   string `gorm:"size:10;uniqueIndex:uniq_salon_closed_date" json:"date"` // YYYY-MM-DD
	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
