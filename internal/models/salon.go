package models

import "time"

type Salon struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Slug     string `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	Phone    string `gorm:"size:20" json:"phone"`
	Address  string `gorm:"size:255" json:"address"`
	Timezone string `gorm:"size:64" json:"timezone"`

	// PerStylistMode: availability follows each stylist's own hours and
	// blocked dates instead of the shared salon schedule.
	PerStylistMode bool `gorm:"default:false" json:"per_stylist_mode"`

	SlotGranularityMin int `gorm:"default:30" json:"slot_granularity_min"`
	MinAdvanceMinutes  int `gorm:"default:60" json:"min_advance_minutes"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
