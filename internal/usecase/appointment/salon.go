package appointment

import (
	"context"
	"time"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	sched "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
	"github.com/BruksfildServices01/salon-scheduler/internal/timezone"
	scheduleuc "github.com/BruksfildServices01/salon-scheduler/internal/usecase/schedule"
)

// salonContext is what every booking operation needs from the salon row.
type salonContext struct {
	salon *models.Salon
	hours sched.Schedule
	loc   *time.Location
}

func loadSalon(
	ctx context.Context,
	repo domain.Repository,
	salonID uint,
	log *zap.Logger,
) (*salonContext, error) {

	salon, err := repo.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	return &salonContext{
		salon: salon,
		hours: scheduleuc.HoursOf(salon, log),
		loc:   timezone.Location(salon.Timezone),
	}, nil
}
