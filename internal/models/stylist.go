package models

import "time"

// Stylist is a column in the booking view, backed by one calendar.
type Stylist struct {
	ID      uint `gorm:"primaryKey" json:"id"`
	SalonID uint `gorm:"uniqueIndex:idx_salon_stylist_key" json:"salon_id"`

	Key        string `gorm:"size:50;not null;uniqueIndex:idx_salon_stylist_key" json:"key"`
	Name       string `gorm:"size:100;not null" json:"name"`
	CalendarID string `gorm:"size:255;not null" json:"calendar_id"`
	Color      string `gorm:"size:20" json:"color"`
	Position   int    `gorm:"default:0" json:"position"`
	Active     bool   `gorm:"default:true" json:"active"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
