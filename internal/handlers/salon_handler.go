package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucSalon "github.com/BruksfildServices01/salon-scheduler/internal/usecase/salon"
)

type SalonHandler struct {
	get    *ucSalon.GetSalon
	update *ucSalon.UpdateSalon
	log    *zap.Logger
}

func NewSalonHandler(
	get *ucSalon.GetSalon,
	update *ucSalon.UpdateSalon,
	log *zap.Logger,
) *SalonHandler {
	return &SalonHandler{
		get:    get,
		update: update,
		log:    log,
	}
}

type UpdateSalonRequest struct {
	Name     *string `json:"name"`
	Timezone *string `json:"timezone"`
}

func (h *SalonHandler) Get(c *gin.Context) {
	salon, err := h.get.Execute(c.Request.Context(), middleware.SalonID(c))
	if err != nil {
		fail(c, h.log, err, "failed_to_get_salon")
		return
	}

	httpresp.OK(c, salon)
}

func (h *SalonHandler) Update(c *gin.Context) {
	var req UpdateSalonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos no válidos.")
		return
	}

	salon, err := h.update.Execute(c.Request.Context(), ucSalon.UpdateSalonInput{
		SalonID:  middleware.SalonID(c),
		Actor:    middleware.Actor(c),
		Name:     req.Name,
		Timezone: req.Timezone,
	})
	if err != nil {
		fail(c, h.log, err, "failed_to_update_salon")
		return
	}

	httpresp.OK(c, salon)
}

// Me describes the caller: the token subject and the salon it acts on.
func (h *SalonHandler) Me(c *gin.Context) {
	salon, err := h.get.Execute(c.Request.Context(), middleware.SalonID(c))
	if err != nil {
		fail(c, h.log, err, "failed_to_get_salon")
		return
	}

	httpresp.OK(c, gin.H{
		"actor": middleware.Actor(c),
		"salon": gin.H{
			"id":       salon.ID,
			"name":     salon.Name,
			"timezone": salon.Timezone,
		},
	})
}
