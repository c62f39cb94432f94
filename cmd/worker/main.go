package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	dbpkg "github.com/BruksfildServices01/salon-scheduler/internal/db"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/logging"
	"github.com/BruksfildServices01/salon-scheduler/internal/messaging"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	ucReminder "github.com/BruksfildServices01/salon-scheduler/internal/usecase/reminder"
)

// Upper bound for one reminder run.
const runTimeout = 15 * time.Minute

func main() {
	cfg := config.Load()
	log := logging.Must(cfg.Env, cfg.LogLevel)
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db := dbpkg.NewDB(cfg, log)
	salonRepo := infraRepo.NewSalonGormRepository(db)

	send := ucReminder.NewSendReminders(
		salonRepo,
		infraRepo.NewCalendarGormStore(db),
		messaging.NewOutbound(cfg.WhatsAppDebugMode, cfg.WhatsAppWhitelist, log),
		metrics.NewBookingMetrics(prometheus.DefaultRegisterer),
		log,
	)

	c := cron.New(
		cron.WithLocation(timezone.Location(cfg.SalonTimezone)),
		cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
	)

	_, err := c.AddFunc(cfg.ReminderCron, func() {
		runCtx, cancel := context.WithTimeout(ctx, runTimeout)
		defer cancel()

		report, err := send.Execute(runCtx, cfg.SalonID)
		if err != nil {
			log.Error("reminder run failed", zap.Error(err))
			return
		}
		log.Info("reminder run done",
			zap.String("date", report.Date),
			zap.Int("sent", report.Stats.Sent),
			zap.Int("errors", report.Stats.Errors),
			zap.Int("skipped", report.Stats.Skipped),
		)
	})
	if err != nil {
		log.Fatal("invalid REMINDER_CRON", zap.String("spec", cfg.ReminderCron), zap.Error(err))
	}

	c.Start()
	log.Info("reminder worker started",
		zap.String("spec", cfg.ReminderCron),
		zap.String("timezone", cfg.SalonTimezone),
	)

	<-ctx.Done()
	log.Info("stopping reminder worker")
	<-c.Stop().Done()
}
