package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	"github.com/BruksfildServices01/salon-scheduler/internal/config"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/salon-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/salon-scheduler/internal/messaging"
	"github.com/BruksfildServices01/salon-scheduler/internal/metrics"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
	ucReminder "github.com/BruksfildServices01/salon-scheduler/internal/usecase/reminder"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
	ucSchedule "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
	ucStylist "github.com/BruksfildServices01/salon-scheduler/internal/usecase/stylist"
)

func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	cache domain.DayCache,
	auditDispatcher *audit.Dispatcher,
	m *metrics.BookingMetrics,
	cfg *config.Config,
	log *zap.Logger,
) {

	// ======================================================
	// GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.RequestLogger(log, m))
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	salonRepo := infraRepo.NewSalonGormRepository(db)
	calendar := infraRepo.NewCalendarGormStore(db)
	auditLogger := audit.New(db)
	outbound := messaging.NewOutbound(cfg.WhatsAppDebugMode, cfg.WhatsAppWhitelist, log)

	// ======================================================
	// USE CASES — APPOINTMENTS
	// ======================================================
	writer := ucAppointment.NewWriter(
		salonRepo,
		calendar,
		cache,
		outbound,
		auditDispatcher,
		m,
		log,
		cfg.DefaultDurationMin,
	)

	listByDateUC := ucAppointment.NewListAppointmentsByDate(
		salonRepo,
		calendar,
		cache,
		log,
	)

	listByWeekUC := ucAppointment.NewListAppointmentsByWeek(
		salonRepo,
		calendar,
		log,
	)

	// ======================================================
	// USE CASES — SALON / SCHEDULE / STYLISTS / REMINDERS
	// ======================================================
	getSalonUC := ucSalon.NewGetSalon(salonRepo)
	updateSalonUC := ucSalon.NewUpdateSalon(salonRepo, cache, auditDispatcher)

	getScheduleUC := ucSchedule.NewGetSchedule(salonRepo, log)
	replaceScheduleUC := ucSchedule.NewReplaceSchedule(salonRepo, auditDispatcher, log)
	dayWindowUC := ucSchedule.NewGetDayWindow(salonRepo, log)

	listStylistsUC := ucStylist.NewListStylists(salonRepo)
	createStylistUC := ucStylist.NewCreateStylist(salonRepo, auditDispatcher)

	sendRemindersUC := ucReminder.NewSendReminders(
		salonRepo,
		calendar,
		outbound,
		m,
		log,
	)

	// ======================================================
	// HANDLERS
	// ======================================================
	appointmentHandler := handlers.NewAppointmentHandler(
		ucAppointment.NewCreateAppointment(writer),
		ucAppointment.NewUpdateAppointment(writer),
		ucAppointment.NewDeleteAppointment(writer),
		listByDateUC,
		listByWeekUC,
		log,
	)

	scheduleHandler := handlers.NewScheduleHandler(
		getScheduleUC,
		replaceScheduleUC,
		dayWindowUC,
		log,
	)

	salonHandler := handlers.NewSalonHandler(getSalonUC, updateSalonUC, log)
	stylistHandler := handlers.NewStylistHandler(listStylistsUC, createStylistUC, log)
	reminderHandler := handlers.NewReminderHandler(sendRemindersUC, cfg.CronSecret, cfg.SalonID, log)
	auditLogsHandler := handlers.NewAuditLogsHandler(auditLogger, log)

	// ======================================================
	// OPS
	// ======================================================
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	api.Use(middleware.RateLimitMiddleware(cfg.RateLimitPerMin, log))
	{
		// key-protected, called by cron
		api.GET("/cron/reminders", reminderHandler.Run)

		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			secured.GET("/me", salonHandler.Me)

			secured.GET("/settings/salon", salonHandler.Get)
			secured.PATCH("/settings/salon", salonHandler.Update)

			secured.GET("/stylists", stylistHandler.List)
			secured.POST("/stylists", stylistHandler.Create)

			// ------------------------------
			// APPOINTMENTS
			// ------------------------------
			secured.GET("/appointments", appointmentHandler.ListByDate)
			secured.GET("/appointments/week", appointmentHandler.ListByWeek)
			secured.POST("/appointments", appointmentHandler.Create)
			secured.PUT("/appointments/:id", appointmentHandler.Update)
			secured.DELETE("/appointments/:id", appointmentHandler.Delete)

			// ------------------------------
			// SCHEDULE
			// ------------------------------
			secured.GET("/settings/schedule", scheduleHandler.Get)
			secured.PUT("/settings/schedule", scheduleHandler.Replace)
			secured.GET("/schedule/day", scheduleHandler.Day)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
