package models

import "time"

type Service struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Category    string  `gorm:"size:50" json:"category"`
	Price       float64 `json:"price"`

	DurationMin int `json:"duration_min"`

	// Processing window: ProcessingStartMin minutes into the service the
	// stylist becomes free for ProcessingDurationMin minutes (colour
	// developing). Both zero means the service occupies the stylist fully.
	// Invariant, enforced at create/update:
	// ProcessingStartMin + ProcessingDurationMin <= DurationMin.
	ProcessingStartMin    int `json:"processing_start_min"`
	ProcessingDurationMin int `json:"processing_duration_min"`

	Active bool `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
