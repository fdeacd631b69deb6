package models

import "time"

// SalonHours is the salon-wide weekly template, one row per weekday.
type SalonHours struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Weekday int `gorm:"uniqueIndex:uniq_salon_weekday" json:"weekday"`

	IsOpen      bool   `json:"is_open"`
	OpeningTime string `gorm:"size:5" json:"opening_time"`
	ClosingTime string `gorm:"size:5" json:"closing_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ScheduleOverride replaces the weekly entry for a single calendar date
// (late opening, short day). A closed date is modeled in ClosedDate instead.
type ScheduleOverride struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:uniq_salon_override_date" json:"salon_id"`

	Date string `gorm:"size:10;uniqueIndex:uniq_salon_override_date" json:"date"` // YYYY-MM-DD

	IsOpen      bool   `json:"is_open"`
	OpeningTime string `gorm:"size:5" json:"opening_time"`
	ClosingTime string `gorm:"size:5" json:"closing_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
