package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
)

type UpdateAppointment struct {
	*Writer
}

func NewUpdateAppointment(w *Writer) *UpdateAppointment {
	return &UpdateAppointment{Writer: w}
}

// Execute rewrites the event in place. The event stays on the calendar of
// in.Stylist; moving between stylists is delete + create.
func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	id string,
	in AppointmentInput,
) (_ *domain.Appointment, err error) {
	defer func() { uc.metrics.ObserveAppointment("update", err) }()

	if id == "" {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	sc, stylist, ev, err := uc.prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	updated, err := uc.cal.UpdateEvent(ctx, stylist.CalendarID, id, ev)
	if err != nil {
		return nil, err
	}

	uc.afterWrite(ctx, "appointment_updated", in.SalonID, in.Actor, stylist.Key, updated.ID)
	uc.log.Info("appointment updated", zap.String("id", updated.ID), zap.String("stylist", stylist.Key))

	ap := domain.FromEvent(updated, stylist.Key, sc.loc)
	return &ap, nil
}
