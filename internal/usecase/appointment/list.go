package appointment

import (
	"context"
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	sched "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

// Concurrent calendar reads per request.
const maxCalendarReads = 4

// ======================================================
// FAN-OUT
// ======================================================

// readCalendars lists [from, to) of every stylist calendar in parallel.
// The result is indexed like stylists.
func readCalendars(
	ctx context.Context,
	cal domain.Calendar,
	stylists []models.Stylist,
	from, to time.Time,
	loc *time.Location,
) ([][]domain.Appointment, error) {

	out := make([][]domain.Appointment, len(stylists))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxCalendarReads)

	for i, st := range stylists {
		i, st := i, st
		g.Go(func() error {
			events, err := cal.ListEvents(gctx, st.CalendarID, from, to)
			if err != nil {
				return fmt.Errorf("list calendar of %s: %w", st.Key, err)
			}

			aps := make([]domain.Appointment, 0, len(events))
			for _, ev := range events {
				aps = append(aps, domain.FromEvent(ev, st.Key, loc))
			}
			out[i] = aps
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

// ======================================================
// DAY
// ======================================================

type ListAppointmentsByDate struct {
	repo  domain.Repository
	cal   domain.Calendar
	cache domain.DayCache
	log   *zap.Logger
}

func NewListAppointmentsByDate(
	repo domain.Repository,
	cal domain.Calendar,
	cache domain.DayCache,
	log *zap.Logger,
) *ListAppointmentsByDate {
	return &ListAppointmentsByDate{
		repo:  repo,
		cal:   cal,
		cache: cache,
		log:   log,
	}
}

// Execute returns every stylist column for date; stylists without
// appointments map to an empty list.
func (uc *ListAppointmentsByDate) Execute(
	ctx context.Context,
	salonID uint,
	date string,
) (*domain.DayListing, error) {

	sc, err := loadSalon(ctx, uc.repo, salonID, uc.log)
	if err != nil {
		return nil, err
	}

	day, err := timezone.ParseDate(sc.salon.Timezone, date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}
	key := timezone.FormatDate(day)

	if listing, ok := uc.cache.Get(ctx, salonID, key); ok {
		return listing, nil
	}

	stylists, err := uc.repo.ListStylists(ctx, salonID)
	if err != nil {
		return nil, err
	}

	columns, err := readCalendars(ctx, uc.cal, stylists, day, day.AddDate(0, 0, 1), sc.loc)
	if err != nil {
		return nil, err
	}

	listing := &domain.DayListing{
		Date:      key,
		Calendars: make(map[string][]domain.Appointment, len(stylists)),
	}
	for i, st := range stylists {
		listing.Calendars[st.Key] = columns[i]
	}

	uc.cache.Set(ctx, salonID, key, listing)
	return listing, nil
}

// ======================================================
// WEEK
// ======================================================

// WeekListing is Monday to Saturday of one week. Appointments of all
// stylists are merged per day and sorted by start.
type WeekListing struct {
	Days         []string                        `json:"days"`
	Appointments map[string][]domain.Appointment `json:"appointments"`
}

type ListAppointmentsByWeek struct {
	repo domain.Repository
	cal  domain.Calendar
	log  *zap.Logger
}

func NewListAppointmentsByWeek(
	repo domain.Repository,
	cal domain.Calendar,
	log *zap.Logger,
) *ListAppointmentsByWeek {
	return &ListAppointmentsByWeek{
		repo: repo,
		cal:  cal,
		log:  log,
	}
}

func (uc *ListAppointmentsByWeek) Execute(
	ctx context.Context,
	salonID uint,
	date string,
) (*WeekListing, error) {

	sc, err := loadSalon(ctx, uc.repo, salonID, uc.log)
	if err != nil {
		return nil, err
	}

	ref, err := timezone.ParseDate(sc.salon.Timezone, date)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	days := sched.WeekDays(ref)
	from := days[0]
	to := days[len(days)-1].AddDate(0, 0, 1)

	stylists, err := uc.repo.ListStylists(ctx, salonID)
	if err != nil {
		return nil, err
	}

	columns, err := readCalendars(ctx, uc.cal, stylists, from, to, sc.loc)
	if err != nil {
		return nil, err
	}

	week := &WeekListing{
		Days:         make([]string, 0, len(days)),
		Appointments: make(map[string][]domain.Appointment, len(days)),
	}
	for _, d := range days {
		key := timezone.FormatDate(d)
		week.Days = append(week.Days, key)
		week.Appointments[key] = []domain.Appointment{}
	}

	for _, col := range columns {
		for _, ap := range col {
			key := timezone.FormatDate(ap.Start)
			if _, ok := week.Appointments[key]; ok {
				week.Appointments[key] = append(week.Appointments[key], ap)
			}
		}
	}
	for _, aps := range week.Appointments {
		sort.SliceStable(aps, func(i, j int) bool { return aps[i].Start.Before(aps[j].Start) })
	}

	return week, nil
}
