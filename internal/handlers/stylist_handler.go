package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/salon-scheduler/internal/middleware"
	ucStylist "github.com/BruksfildServices01/salon-scheduler/internal/usecase/stylist"
)

type StylistHandler struct {
	list   *ucStylist.ListStylists
	create *ucStylist.CreateStylist
	log    *zap.Logger
}

func NewStylistHandler(
	list *ucStylist.ListStylists,
	create *ucStylist.CreateStylist,
	log *zap.Logger,
) *StylistHandler {
	return &StylistHandler{
		list:   list,
		create: create,
		log:    log,
	}
}

type CreateStylistRequest struct {
	Key        string `json:"key" binding:"required"`
	Name       string `json:"name"`
	CalendarID string `json:"calendar_id"`
	Color      string `json:"color"`
	Position   int    `json:"position"`
}

func (h *StylistHandler) List(c *gin.Context) {
	stylists, err := h.list.Execute(c.Request.Context(), middleware.SalonID(c))
	if err != nil {
		fail(c, h.log, err, "list_stylists_failed")
		return
	}

	httpresp.List(c, stylists)
}

func (h *StylistHandler) Create(c *gin.Context) {
	var req CreateStylistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos no válidos.")
		return
	}

	st, err := h.create.Execute(c.Request.Context(), ucStylist.CreateStylistInput{
		SalonID:    middleware.SalonID(c),
		Actor:      middleware.Actor(c),
		Key:        req.Key,
		Name:       req.Name,
		CalendarID: req.CalendarID,
		Color:      req.Color,
		Position:   req.Position,
	})
	if err != nil {
		fail(c, h.log, err, "create_stylist_failed")
		return
	}

	httpresp.Created(c, st)
}
