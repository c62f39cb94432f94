package reminder

import (
	"context"
	"math/rand"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	sched "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/messaging"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
)

const unnamedClient = "Cliente"

type Stats struct {
	Sent    int `json:"sent"`
	Errors  int `json:"errors"`
	Skipped int `json:"skipped"`
}

type Result struct {
	Client string `json:"client"`
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

type Report struct {
	Success bool     `json:"success"`
	Date    string   `json:"date"`
	Stats   Stats    `json:"stats"`
	Results []Result `json:"results"`
}

// SendReminders messages every client booked for tomorrow who asked for
// reminders and left a phone number.
type SendReminders struct {
	repo    domain.Repository
	cal     domain.Calendar
	sender  messaging.Sender
	metrics *metrics.BookingMetrics
	log     *zap.Logger

	pick func(n int) int
	now  func() time.Time
}

func NewSendReminders(
	repo domain.Repository,
	cal domain.Calendar,
	sender messaging.Sender,
	metrics *metrics.BookingMetrics,
	log *zap.Logger,
) *SendReminders {
	return &SendReminders{
		repo:    repo,
		cal:     cal,
		sender:  sender,
		metrics: metrics,
		log:     log,
		pick:    rand.Intn,
		now:     time.Now,
	}
}

// WithPicker replaces the random greeting/closing choice.
func (uc *SendReminders) WithPicker(pick func(n int) int) *SendReminders {
	uc.pick = pick
	return uc
}

func (uc *SendReminders) WithClock(now func() time.Time) *SendReminders {
	uc.now = now
	return uc
}

func (uc *SendReminders) Execute(
	ctx context.Context,
	salonID uint,
) (*Report, error) {

	salon, err := uc.repo.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}
	loc := timezone.Location(salon.Timezone)

	from := sched.StartOfDay(uc.now().In(loc)).AddDate(0, 0, 1)
	to := from.AddDate(0, 0, 1)

	stylists, err := uc.repo.ListStylists(ctx, salonID)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Success: true,
		Date:    LongDate(from),
		Results: []Result{},
	}
	uc.log.Info("reminder run started", zap.String("date", timezone.FormatDate(from)))

	for _, st := range stylists {
		events, err := uc.cal.ListEvents(ctx, st.CalendarID, from, to)
		if err != nil {
			// one unreachable calendar does not stop the others
			uc.log.Error("reminder calendar read failed", zap.String("stylist", st.Key), zap.Error(err))
			continue
		}

		for _, ev := range events {
			details := domain.DecodeDescription(ev.Description)
			if !details.Reminders || details.Phone == "" {
				report.Stats.Skipped++
				uc.metrics.ObserveReminder("skipped")
				continue
			}

			client := ev.Summary
			if client == "" {
				client = unnamedClient
			}

			text := Message(uc.pick, client, report.Date, timezone.FormatClock(ev.Start.In(loc)), st.Name)

			if err := uc.sender.Send(ctx, details.Phone, text); err != nil {
				report.Stats.Errors++
				report.Results = append(report.Results, Result{Client: client, Status: "error", Error: err.Error()})
				uc.metrics.ObserveReminder("error")
				uc.log.Warn("reminder not sent", zap.String("event_id", ev.ID), zap.Error(err))
				continue
			}

			report.Stats.Sent++
			report.Results = append(report.Results, Result{Client: client, Status: "sent"})
			uc.metrics.ObserveReminder("sent")
		}
	}

	uc.log.Info("reminder run finished",
		zap.Int("sent", report.Stats.Sent),
		zap.Int("errors", report.Stats.Errors),
		zap.Int("skipped", report.Stats.Skipped),
	)
	return report, nil
}
