package models

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

type Salon struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Name     string `gorm:"size:100;not null" json:"name"`
	Timezone string `gorm:"size:64;default:'Europe/Madrid'" json:"timezone"`

	// Stored as {"0": [], "2": [[9,18]], ...}. Empty means the default table.
	OpeningHours schedule.Schedule `gorm:"type:jsonb;serializer:json" json:"opening_hours"`
	// Set when the stored hours could not be decoded and were left out.
	HoursInvalid bool `gorm:"-" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
