package models

import "time"

// CalendarEvent is one entry of a stylist calendar. Summary holds the client
// name and Description the encoded service/phone/reminder details.
type CalendarEvent struct {
	ID         string `gorm:"primaryKey;size:64" json:"id"`
	CalendarID string `gorm:"size:255;not null;index:idx_calendar_start" json:"calendar_id"`

	Summary     string `gorm:"size:255" json:"summary"`
	Description string `gorm:"type:text" json:"description"`

	StartTime time.Time `gorm:"not null;index:idx_calendar_start" json:"start_time"`
	EndTime   time.Time `gorm:"not null" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
