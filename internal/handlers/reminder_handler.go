package handlers

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	ucReminder "github.com/BruksfildServices01/salon-scheduler/internal/usecase/reminder"
)

// ReminderHandler is hit by an external scheduler (curl from cron) with
// ?key=CRON_SECRET.
type ReminderHandler struct {
	send    *ucReminder.SendReminders
	secret  string
	salonID uint
	log     *zap.Logger
}

func NewReminderHandler(
	send *ucReminder.SendReminders,
	secret string,
	salonID uint,
	log *zap.Logger,
) *ReminderHandler {
	return &ReminderHandler{
		send:    send,
		secret:  secret,
		salonID: salonID,
		log:     log,
	}
}

func (h *ReminderHandler) Run(c *gin.Context) {
	// no secret configured means the route is open
	if h.secret != "" && subtle.ConstantTimeCompare([]byte(c.Query("key")), []byte(h.secret)) != 1 {
		httperr.Unauthorized(c, "unauthorized", "No autorizado.")
		return
	}

	report, err := h.send.Execute(c.Request.Context(), h.salonID)
	if err != nil {
		fail(c, h.log, err, "reminders_failed")
		return
	}

	httpresp.OK(c, report)
}
