package models

import "time"

type Stylist struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"index" json:"salon_id"`

	Name     string `gorm:"size:100;not null" json:"name"`
	Bio      string `gorm:"size:500" json:"bio"`
	PhotoURL string `gorm:"size:255" json:"photo_url"`

	Active bool `gorm:"default:true" json:"active"`

	// UseOwnHours: this stylist keeps a custom weekly template
	// (effective only when the salon runs in per-stylist mode).
	UseOwnHours bool `gorm:"default:false" json:"use_own_hours"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StylistHours mirrors SalonHours per stylist.
type StylistHours struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"uniqueIndex:uniq_stylist_weekday" json:"stylist_id"`

	Weekday int `gorm:"uniqueIndex:uniq_stylist_weekday" json:"weekday"`

	IsOpen      bool   `json:"is_open"`
	OpeningTime string `gorm:"size:5" json:"opening_time"`
	ClosingTime string `gorm:"size:5" json:"closing_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// StylistBlockedDate: a full day off for one stylist.
type StylistBlockedDate struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	StylistID uint `gorm:"uniqueIndex:uniq_stylist_blocked_date" json:"stylist_id"`

	Date   string `gorm:"size:10;uniqueIndex:uniq_stylist_blocked_date" json:"date"` // YYYY-MM-DD
	Reason string `gorm:"size:255" json:"reason"`

	CreatedAt time.Time `json:"created_at"`
}
