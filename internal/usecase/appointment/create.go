package appointment

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
)

type CreateAppointment struct {
	*Writer
}

func NewCreateAppointment(w *Writer) *CreateAppointment {
	return &CreateAppointment{Writer: w}
}

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in AppointmentInput,
) (_ *domain.Appointment, err error) {
	defer func() { uc.metrics.ObserveAppointment("create", err) }()

	sc, stylist, ev, err := uc.prepare(ctx, in)
	if err != nil {
		return nil, err
	}

	created, err := uc.cal.InsertEvent(ctx, stylist.CalendarID, ev)
	if err != nil {
		return nil, err
	}

	uc.afterWrite(ctx, "appointment_created", in.SalonID, in.Actor, stylist.Key, created.ID)
	uc.confirm(ctx, sc, stylist, created)
	uc.log.Info("appointment created",
		zap.String("id", created.ID),
		zap.String("stylist", stylist.Key),
		zap.Time("start", created.Start),
	)

	ap := domain.FromEvent(created, stylist.Key, sc.loc)
	return &ap, nil
}
