package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	SalonID uint  `json:"salon_id"`
	Salon   Salon `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"salon"`

	// StylistID nil = "any available stylist"; the booking occupies every
	// stylist's grid until an admin assigns one.
	StylistID *uint    `json:"stylist_id"`
	Stylist   *Stylist `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"stylist,omitempty"`

	ClientID uint   `json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"client"`

	Services []Service `gorm:"many2many:appointment_services;" json:"services"`

	// Reference is the public handle for unauthenticated cancellation.
	Reference string `gorm:"size:36;uniqueIndex" json:"reference"`

	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`

	// Occupancy footprint, denormalized from the service set at booking time.
	TotalDurationMin      int `json:"total_duration_min"`
	ProcessingStartMin    int `json:"processing_start_min"`
	ProcessingDurationMin int `json:"processing_duration_min"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`
	NoShowAt    *time.Time `json:"no_show_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
