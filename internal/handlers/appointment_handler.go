package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create   *ucAppointment.CreateAppointment
	update   *ucAppointment.UpdateAppointment
	remove   *ucAppointment.DeleteAppointment
	listDay  *ucAppointment.ListAppointmentsByDate
	listWeek *ucAppointment.ListAppointmentsByWeek
	log      *zap.Logger
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	remove *ucAppointment.DeleteAppointment,
	listDay *ucAppointment.ListAppointmentsByDate,
	listWeek *ucAppointment.ListAppointmentsByWeek,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		create:   create,
		update:   update,
		remove:   remove,
		listDay:  listDay,
		listWeek: listWeek,
		log:      log,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type AppointmentRequest struct {
	Stylist    string `json:"stylist" binding:"required"`
	ClientName string `json:"client_name"`
	Service    string `json:"service"`
	Phone      string `json:"phone"`
	Reminders  bool   `json:"reminders"`
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	Duration   int    `json:"duration"`
}

func (r AppointmentRequest) input(c *gin.Context) ucAppointment.AppointmentInput {
	return ucAppointment.AppointmentInput{
		SalonID:     middleware.SalonID(c),
		Actor:       middleware.Actor(c),
		Stylist:     r.Stylist,
		ClientName:  r.ClientName,
		Service:     r.Service,
		Phone:       r.Phone,
		Reminders:   r.Reminders,
		Date:        r.Date,
		Time:        r.Time,
		DurationMin: r.Duration,
	}
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Falta la fecha.")
		return
	}

	listing, err := h.listDay.Execute(c.Request.Context(), middleware.SalonID(c), date)
	if err != nil {
		fail(c, h.log, err, "list_appointments_failed")
		return
	}

	httpresp.OK(c, listing)
}

func (h *AppointmentHandler) ListByWeek(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Falta la fecha.")
		return
	}

	week, err := h.listWeek.Execute(c.Request.Context(), middleware.SalonID(c), date)
	if err != nil {
		fail(c, h.log, err, "list_week_failed")
		return
	}

	httpresp.OK(c, week)
}

// ======================================================
// WRITE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos no válidos.")
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), req.input(c))
	if err != nil {
		fail(c, h.log, err, "create_appointment_failed")
		return
	}

	httpresp.Created(c, ap)
}

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos no válidos.")
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), c.Param("id"), req.input(c))
	if err != nil {
		fail(c, h.log, err, "update_appointment_failed")
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) Delete(c *gin.Context) {
	err := h.remove.Execute(
		c.Request.Context(),
		middleware.SalonID(c),
		middleware.Actor(c),
		c.Query("stylist"),
		c.Param("id"),
	)
	if err != nil {
		fail(c, h.log, err, "delete_appointment_failed")
		return
	}

	httpresp.OK(c, gin.H{"success": true})
}
