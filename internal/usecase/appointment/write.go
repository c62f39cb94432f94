package appointment

import (
	"context"
	"math/rand"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	sched "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/messaging"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	"github.com/BruksfildServices01/salon-scheduler/internal/usecase/reminder"
)

const confirmTimeout = 30 * time.Second

// ======================================================
// INPUT
// ======================================================

type AppointmentInput struct {
	SalonID uint
	Actor   string
	Stylist string

	ClientName string
	Service    string
	Phone      string
	Reminders  bool

	Date        string
	Time        string
	DurationMin int
}

// ======================================================
// SHARED
// ======================================================

// Writer bundles what create, update and delete share.
type Writer struct {
	repo    domain.Repository
	cal     domain.Calendar
	cache   domain.DayCache
	sender  messaging.Sender
	audit   *audit.Dispatcher
	metrics *metrics.BookingMetrics
	log     *zap.Logger

	defaultDurationMin int

	pick    func(n int) int
	now     func() time.Time
	pending sync.WaitGroup
}

// NewWriter builds the shared writer. A nil sender disables booking
// confirmations.
func NewWriter(
	repo domain.Repository,
	cal domain.Calendar,
	cache domain.DayCache,
	sender messaging.Sender,
	audit *audit.Dispatcher,
	metrics *metrics.BookingMetrics,
	log *zap.Logger,
	defaultDurationMin int,
) *Writer {
	if defaultDurationMin <= 0 {
		defaultDurationMin = 60
	}
	return &Writer{
		repo:               repo,
		cal:                cal,
		cache:              cache,
		sender:             sender,
		audit:              audit,
		metrics:            metrics,
		log:                log,
		defaultDurationMin: defaultDurationMin,
		pick:               rand.Intn,
		now:                time.Now,
	}
}

// WithPicker replaces the random greeting/closing choice of confirmations.
func (w *Writer) WithPicker(pick func(n int) int) *Writer {
	w.pick = pick
	return w
}

func (w *Writer) WithClock(now func() time.Time) *Writer {
	w.now = now
	return w
}

// Wait blocks until every confirmation in flight has been handed to the
// sender.
func (w *Writer) Wait() {
	w.pending.Wait()
}

// prepare resolves the stylist and turns the input into a calendar event.
func (w *Writer) prepare(
	ctx context.Context,
	in AppointmentInput,
) (*salonContext, *models.Stylist, domain.Event, error) {

	sc, err := loadSalon(ctx, w.repo, in.SalonID, w.log)
	if err != nil {
		return nil, nil, domain.Event{}, err
	}

	// --------------------------------------------------
	// Stylist (case-insensitive key)
	// --------------------------------------------------
	key := strings.TrimSpace(in.Stylist)
	if key == "" {
		return nil, nil, domain.Event{}, httperr.ErrBusiness("invalid_stylist")
	}
	stylist, err := w.repo.GetStylistByKey(ctx, in.SalonID, key)
	if err != nil {
		return nil, nil, domain.Event{}, err
	}

	// --------------------------------------------------
	// Date / time in the salon timezone
	// --------------------------------------------------
	start, err := timezone.ParseDateTime(sc.salon.Timezone, in.Date, in.Time)
	if err != nil {
		return nil, nil, domain.Event{}, httperr.ErrBusiness("invalid_date_or_time")
	}

	duration := in.DurationMin
	if duration <= 0 {
		duration = w.defaultDurationMin
	}

	// --------------------------------------------------
	// Opening hours
	// --------------------------------------------------
	ev, err := domain.Draft{
		ClientName:  strings.TrimSpace(in.ClientName),
		Service:     strings.TrimSpace(in.Service),
		Phone:       strings.TrimSpace(in.Phone),
		Reminders:   in.Reminders,
		Start:       start,
		DurationMin: duration,
	}.ToEvent(sc.hours)
	if err != nil {
		return nil, nil, domain.Event{}, err
	}

	return sc, stylist, ev, nil
}

// afterWrite clears the day cache and records the audit entry.
func (w *Writer) afterWrite(
	ctx context.Context,
	action string,
	salonID uint,
	actor string,
	stylistKey string,
	eventID string,
) {
	w.cache.Invalidate(ctx, salonID)
	w.audit.Dispatch(audit.Event{
		SalonID:  salonID,
		Actor:    actor,
		Action:   action,
		Entity:   "appointment",
		EntityID: eventID,
		Metadata: map[string]string{"stylist": stylistKey},
	})
}

// confirm messages the client about a new booking when they asked for
// reminders and left a phone. Delivery runs in the background and a failure
// only gets logged; the booking stands either way.
func (w *Writer) confirm(
	ctx context.Context,
	sc *salonContext,
	stylist *models.Stylist,
	ev domain.Event,
) {
	if w.sender == nil {
		return
	}
	details := domain.DecodeDescription(ev.Description)
	if !details.Reminders || details.Phone == "" {
		return
	}

	start := ev.Start.In(sc.loc)
	today := sched.StartOfDay(w.now().In(sc.loc))
	day := sched.StartOfDay(start)
	followUp := !day.Equal(today) && !day.Equal(today.AddDate(0, 0, 1))

	text := reminder.ConfirmationMessage(
		w.pick,
		ev.Summary,
		reminder.LongDate(start),
		timezone.FormatClock(start),
		stylist.Name,
		followUp,
	)

	sendCtx := context.WithoutCancel(ctx)
	w.pending.Add(1)
	go func() {
		defer w.pending.Done()

		ctx, cancel := context.WithTimeout(sendCtx, confirmTimeout)
		defer cancel()

		if err := w.sender.Send(ctx, details.Phone, text); err != nil {
			w.log.Warn("booking confirmation not sent",
				zap.String("event_id", ev.ID),
				zap.Error(err),
			)
		}
	}()
}
