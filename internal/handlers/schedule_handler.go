package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	sched "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucSchedule "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
)

type ScheduleHandler struct {
	get       *ucSchedule.GetSchedule
	replace   *ucSchedule.ReplaceSchedule
	dayWindow *ucSchedule.GetDayWindow
	log       *zap.Logger
}

func NewScheduleHandler(
	get *ucSchedule.GetSchedule,
	replace *ucSchedule.ReplaceSchedule,
	dayWindow *ucSchedule.GetDayWindow,
	log *zap.Logger,
) *ScheduleHandler {
	return &ScheduleHandler{
		get:       get,
		replace:   replace,
		dayWindow: dayWindow,
		log:       log,
	}
}

// Get returns the schedule as {"0": [], "2": [[9,18]], ...}.
func (h *ScheduleHandler) Get(c *gin.Context) {
	s, err := h.get.Execute(c.Request.Context(), middleware.SalonID(c))
	if err != nil {
		fail(c, h.log, err, "get_schedule_failed")
		return
	}

	httpresp.OK(c, s)
}

// Replace swaps the whole schedule. Days missing from the body are closed.
func (h *ScheduleHandler) Replace(c *gin.Context) {
	var s sched.Schedule
	if err := c.ShouldBindJSON(&s); err != nil {
		httperr.Respond(c, httperr.ErrBusiness("invalid_schedule"), "invalid_schedule")
		return
	}

	saved, err := h.replace.Execute(
		c.Request.Context(),
		middleware.SalonID(c),
		middleware.Actor(c),
		s,
	)
	if err != nil {
		fail(c, h.log, err, "save_schedule_failed")
		return
	}

	httpresp.OK(c, saved)
}

func (h *ScheduleHandler) Day(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Falta la fecha.")
		return
	}

	w, err := h.dayWindow.Execute(c.Request.Context(), middleware.SalonID(c), date)
	if err != nil {
		fail(c, h.log, err, "day_window_failed")
		return
	}

	httpresp.OK(c, w)
}
