package schedule

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	sched "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Closed days still render a 9..20 grid.
const (
	fallbackStartHour = 9
	fallbackEndHour   = 20
)

type HourSlot struct {
	Hour int  `json:"hour"`
	Open bool `json:"open"`
}

// DayWindow is the timeline of one day: its display range and which hours
// inside it accept bookings.
type DayWindow struct {
	Date      string           `json:"date"`
	Closed    bool             `json:"closed"`
	StartHour int              `json:"start_hour"`
	EndHour   int              `json:"end_hour"`
	Intervals []sched.Interval `json:"intervals"`
	Hours     []HourSlot       `json:"hours"`
}

type GetDayWindow struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewGetDayWindow(
	repo domain.Repository,
	log *zap.Logger,
) *GetDayWindow {
	return &GetDayWindow{
		repo: repo,
		log:  log,
	}
}

func (uc *GetDayWindow) Execute(
	ctx context.Context,
	salonID uint,
	date string,
) (*DayWindow, error) {

	salon, err := uc.repo.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(salon.Timezone, date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	return BuildDayWindow(day, HoursOf(salon, uc.log)), nil
}

// BuildDayWindow lays out day against hours. day must already be in the
// salon's location.
func BuildDayWindow(day time.Time, hours sched.Schedule) *DayWindow {
	intervals := sched.BusinessHoursForDay(day, hours)

	start, end, open := sched.DisplayRange(intervals)
	if !open {
		start, end = fallbackStartHour, fallbackEndHour
	}

	slots := make([]HourSlot, 0, end-start)
	for h := start; h < end; h++ {
		slots = append(slots, HourSlot{
			Hour: h,
			Open: sched.IsBusinessHour(day, h, hours),
		})
	}

	return &DayWindow{
		Date:      timezone.FormatDate(day),
		Closed:    !open,
		StartHour: start,
		EndHour:   end,
		Intervals: intervals,
		Hours:     slots,
	}
}
