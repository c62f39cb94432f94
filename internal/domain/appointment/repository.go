package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// Calendar is the narrow port to the calendar provider. Each stylist owns one
// calendar id.
type Calendar interface {
	ListEvents(ctx context.Context, calendarID string, from, to time.Time) ([]Event, error)
	InsertEvent(ctx context.Context, calendarID string, ev Event) (Event, error)
	UpdateEvent(ctx context.Context, calendarID, eventID string, ev Event) (Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

type Repository interface {
	// -------- Salon --------
	GetSalon(
		ctx context.Context,
		id uint,
	) (*models.Salon, error)

	SaveOpeningHours(
		ctx context.Context,
		salonID uint,
		hours schedule.Schedule,
	) error

	UpdateSalonProfile(
		ctx context.Context,
		salonID uint,
		name string,
		timezone string,
	) error

	// -------- Stylists --------
	ListStylists(
		ctx context.Context,
		salonID uint,
	) ([]models.Stylist, error)

	GetStylistByKey(
		ctx context.Context,
		salonID uint,
		key string,
	) (*models.Stylist, error)

	CreateStylist(
		ctx context.Context,
		st *models.Stylist,
	) error
}

// DayCache holds formatted day listings for a short time.
type DayCache interface {
	Get(ctx context.Context, salonID uint, date string) (*DayListing, bool)
	Set(ctx context.Context, salonID uint, date string, listing *DayListing)
	Invalidate(ctx context.Context, salonID uint)
}

// DayListing groups one day's appointments by stylist key.
type DayListing struct {
	Date      string                   `json:"date"`
	Calendars map[string][]Appointment `json:"calendars"`
}
