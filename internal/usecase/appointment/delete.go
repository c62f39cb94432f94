package appointment

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type DeleteAppointment struct {
	*Writer
}

func NewDeleteAppointment(w *Writer) *DeleteAppointment {
	return &DeleteAppointment{Writer: w}
}

func (uc *DeleteAppointment) Execute(
	ctx context.Context,
	salonID uint,
	actor string,
	stylistKey string,
	id string,
) (err error) {
	defer func() { uc.metrics.ObserveAppointment("delete", err) }()

	if id == "" {
		return httperr.ErrBusiness("appointment_not_found")
	}
	if strings.TrimSpace(stylistKey) == "" {
		return httperr.ErrBusiness("invalid_stylist")
	}

	stylist, err := uc.repo.GetStylistByKey(ctx, salonID, stylistKey)
	if err != nil {
		return err
	}

	if err := uc.cal.DeleteEvent(ctx, stylist.CalendarID, id); err != nil {
		return err
	}

	uc.afterWrite(ctx, "appointment_deleted", salonID, actor, stylist.Key, id)
	uc.log.Info("appointment deleted", zap.String("id", id), zap.String("stylist", stylist.Key))
	return nil
}
