package schedule

import (
	"context"

	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	sched "github.com/BruksfildServices01/salon-scheduler/internal/domain/schedule"
)

type GetSchedule struct {
	repo domain.Repository
	log  *zap.Logger
}

func NewGetSchedule(
	repo domain.Repository,
	log *zap.Logger,
) *GetSchedule {
	return &GetSchedule{
		repo: repo,
		log:  log,
	}
}

// Execute returns all seven days, each sorted.
func (uc *GetSchedule) Execute(
	ctx context.Context,
	salonID uint,
) (sched.Schedule, error) {

	salon, err := uc.repo.GetSalon(ctx, salonID)
	if err != nil {
		return nil, err
	}

	return HoursOf(salon, uc.log).Normalize(), nil
}
