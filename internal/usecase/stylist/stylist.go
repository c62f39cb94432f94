package stylist

import (
	"context"
	"regexp"
	"strings"

	"github.com/BruksfildServices01/salon-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

var keyPattern = regexp.MustCompile(`^[a-z0-9][a-z0-9_-]{0,49}$`)

type ListStylists struct {
	repo domain.Repository
}

func NewListStylists(repo domain.Repository) *ListStylists {
	return &ListStylists{repo: repo}
}

func (uc *ListStylists) Execute(ctx context.Context, salonID uint) ([]models.Stylist, error) {
	return uc.repo.ListStylists(ctx, salonID)
}

type CreateStylistInput struct {
	SalonID    uint
	Actor      string
	Key        string
	Name       string
	CalendarID string
	Color      string
	Position   int
}

type CreateStylist struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewCreateStylist(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CreateStylist {
	return &CreateStylist{
		repo:  repo,
		audit: audit,
	}
}

func (uc *CreateStylist) Execute(
	ctx context.Context,
	in CreateStylistInput,
) (*models.Stylist, error) {

	key := strings.ToLower(strings.TrimSpace(in.Key))
	if !keyPattern.MatchString(key) {
		return nil, httperr.ErrBusiness("invalid_stylist")
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = key
	}
	calendarID := strings.TrimSpace(in.CalendarID)
	if calendarID == "" {
		calendarID = key
	}

	st := &models.Stylist{
		SalonID:    in.SalonID,
		Key:        key,
		Name:       name,
		CalendarID: calendarID,
		Color:      in.Color,
		Position:   in.Position,
		Active:     true,
	}
	if err := uc.repo.CreateStylist(ctx, st); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		SalonID:  in.SalonID,
		Actor:    in.Actor,
		Action:   "stylist_created",
		Entity:   "stylist",
		EntityID: st.Key,
	})

	return st, nil
}
