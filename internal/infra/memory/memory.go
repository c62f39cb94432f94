// Package memory holds in-process implementations of the booking ports,
// used by tests and local runs without Postgres or Redis.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// --------------------------------------------------
// Calendar
// --------------------------------------------------

type Calendar struct {
	mu     sync.Mutex
	events map[string]map[string]domain.Event
	seq    int

	// Fail makes ListEvents return the given error for a calendar id.
	Fail map[string]error
}

func NewCalendar() *Calendar {
	return &Calendar{
		events: make(map[string]map[string]domain.Event),
		Fail:   make(map[string]error),
	}
}

func (c *Calendar) ListEvents(
	_ context.Context,
	calendarID string,
	from, to time.Time,
) ([]domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.Fail[calendarID]; err != nil {
		return nil, err
	}

	out := []domain.Event{}
	for _, ev := range c.events[calendarID] {
		if !ev.Start.Before(from) && ev.Start.Before(to) {
			out = append(out, ev)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Start.Before(out[j].Start) })
	return out, nil
}

func (c *Calendar) InsertEvent(
	_ context.Context,
	calendarID string,
	ev domain.Event,
) (domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.seq++
	ev.ID = fmt.Sprintf("ev-%d", c.seq)
	if c.events[calendarID] == nil {
		c.events[calendarID] = make(map[string]domain.Event)
	}
	c.events[calendarID][ev.ID] = ev
	return ev, nil
}

func (c *Calendar) UpdateEvent(
	_ context.Context,
	calendarID, eventID string,
	ev domain.Event,
) (domain.Event, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.events[calendarID][eventID]; !ok {
		return domain.Event{}, httperr.ErrBusiness("appointment_not_found")
	}
	ev.ID = eventID
	c.events[calendarID][eventID] = ev
	return ev, nil
}

func (c *Calendar) DeleteEvent(
	_ context.Context,
	calendarID, eventID string,
) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.events[calendarID][eventID]; !ok {
		return httperr.ErrBusiness("appointment_not_found")
	}
	delete(c.events[calendarID], eventID)
	return nil
}

// --------------------------------------------------
// Repository
// --------------------------------------------------

type Repository struct {
	mu       sync.Mutex
	salons   map[uint]*models.Salon
	stylists []models.Stylist
}

func NewRepository(salons ...models.Salon) *Repository {
	r := &Repository{salons: make(map[uint]*models.Salon)}
	for i := range salons {
		s := salons[i]
		r.salons[s.ID] = &s
	}
	return r
}

func (r *Repository) GetSalon(_ context.Context, id uint) (*models.Salon, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.salons[id]
	if !ok {
		return nil, httperr.ErrBusiness("salon_not_found")
	}
	cp := *s
	cp.OpeningHours = s.OpeningHours.Clone()
	return &cp, nil
}

func (r *Repository) SaveOpeningHours(
	_ context.Context,
	salonID uint,
	hours schedule.Schedule,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.salons[salonID]
	if !ok {
		return httperr.ErrBusiness("salon_not_found")
	}
	s.OpeningHours = hours.Clone()
	s.HoursInvalid = false
	return nil
}

func (r *Repository) UpdateSalonProfile(
	_ context.Context,
	salonID uint,
	name string,
	timezone string,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	s, ok := r.salons[salonID]
	if !ok {
		return httperr.ErrBusiness("salon_not_found")
	}
	if name != "" {
		s.Name = name
	}
	if timezone != "" {
		s.Timezone = timezone
	}
	return nil
}

func (r *Repository) ListStylists(_ context.Context, salonID uint) ([]models.Stylist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []models.Stylist{}
	for _, st := range r.stylists {
		if st.SalonID == salonID && st.Active {
			out = append(out, st)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Position < out[j].Position })
	return out, nil
}

func (r *Repository) GetStylistByKey(
	_ context.Context,
	salonID uint,
	key string,
) (*models.Stylist, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key = strings.ToLower(key)
	for _, st := range r.stylists {
		if st.SalonID == salonID && st.Key == key && st.Active {
			cp := st
			return &cp, nil
		}
	}
	return nil, httperr.ErrBusiness("invalid_stylist")
}

func (r *Repository) CreateStylist(_ context.Context, st *models.Stylist) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	st.Key = strings.ToLower(st.Key)
	for _, existing := range r.stylists {
		if existing.SalonID == st.SalonID && existing.Key == st.Key {
			return httperr.ErrBusiness("stylist_exists")
		}
	}
	st.ID = uint(len(r.stylists) + 1)
	r.stylists = append(r.stylists, *st)
	return nil
}

// --------------------------------------------------
// Day cache
// --------------------------------------------------

type DayCache struct {
	mu      sync.Mutex
	entries map[string]domain.DayListing

	Hits          int
	Invalidations int
}

func NewDayCache() *DayCache {
	return &DayCache{entries: make(map[string]domain.DayListing)}
}

func dayKey(salonID uint, date string) string {
	return fmt.Sprintf("%d:%s", salonID, date)
}

func (c *DayCache) Get(_ context.Context, salonID uint, date string) (*domain.DayListing, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	l, ok := c.entries[dayKey(salonID, date)]
	if !ok {
		return nil, false
	}
	c.Hits++
	return &l, true
}

func (c *DayCache) Set(_ context.Context, salonID uint, date string, listing *domain.DayListing) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[dayKey(salonID, date)] = *listing
}

func (c *DayCache) Invalidate(_ context.Context, salonID uint) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := fmt.Sprintf("%d:", salonID)
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	c.Invalidations++
}

var (
	_ domain.Calendar   = (*Calendar)(nil)
	_ domain.Repository = (*Repository)(nil)
	_ domain.DayCache   = (*DayCache)(nil)
)
