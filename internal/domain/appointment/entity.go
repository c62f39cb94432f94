package appointment

import (
	"time"

	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const unnamedClient = "Sin nombre"

// Event is the provider-level shape of a calendar entry.
type Event struct {
	ID          string
	Summary     string
	Description string
	Start       time.Time
	End         time.Time
}

// Appointment is an Event read through the salon's conventions: the summary
// is the client name and the description carries service, phone and the
// reminder flag.
type Appointment struct {
	ID               string    `json:"id"`
	Stylist          string    `json:"stylist"`
	ClientName       string    `json:"client_name"`
	Service          string    `json:"service"`
	Phone            string    `json:"phone,omitempty"`
	RemindersEnabled bool      `json:"reminders_enabled"`
	Time             string    `json:"time"`
	Start            time.Time `json:"start"`
	End              time.Time `json:"end"`
	DurationMin      int       `json:"duration_min"`
}

// FromEvent decodes ev for the stylist identified by stylistKey. Times are
// shown in loc.
func FromEvent(ev Event, stylistKey string, loc *time.Location) Appointment {
	details := DecodeDescription(ev.Description)

	name := ev.Summary
	if name == "" {
		name = unnamedClient
	}

	start := ev.Start.In(loc)
	end := ev.End.In(loc)

	return Appointment{
		ID:               ev.ID,
		Stylist:          stylistKey,
		ClientName:       name,
		Service:          details.Service,
		Phone:            details.Phone,
		RemindersEnabled: details.Reminders,
		Time:             timezone.FormatClock(start),
		Start:            start,
		End:              end,
		DurationMin:      int(end.Sub(start).Round(time.Minute) / time.Minute),
	}
}

// Draft is the input for creating or rewriting an appointment.
type Draft struct {
	ClientName  string
	Service     string
	Phone       string
	Reminders   bool
	Start       time.Time
	DurationMin int
}

// ToEvent validates the draft against the opening hours and builds the
// calendar entry for it.
func (d Draft) ToEvent(hours schedule.Schedule) (Event, error) {
	if d.DurationMin <= 0 {
		return Event{}, httperr.ErrBusiness("invalid_duration")
	}
	if !schedule.SlotAllowed(d.Start, hours) {
		return Event{}, httperr.ErrBusiness("outside_business_hours")
	}

	return Event{
		Summary: d.ClientName,
		Description: EncodeDescription(Details{
			Service:   d.Service,
			Phone:     d.Phone,
			Reminders: d.Reminders,
		}),
		Start: d.Start,
		End:   schedule.EndTime(d.Start, d.DurationMin),
	}, nil
}
