package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/salon-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/salon-scheduler/internal/httperr"
	"github.com/BruksfildServices01/salon-scheduler/internal/models"
)

// CalendarGormStore keeps stylist calendars in Postgres. It is the default
// implementation of the calendar port when no external provider is wired.
type CalendarGormStore struct {
	db *gorm.DB
}

func NewCalendarGormStore(db *gorm.DB) *CalendarGormStore {
	return &CalendarGormStore{db: db}
}

// ListEvents returns events starting in [from, to), ordered by start time.
func (s *CalendarGormStore) ListEvents(
	ctx context.Context,
	calendarID string,
	from time.Time,
	to time.Time,
) ([]domain.Event, error) {

	var rows []models.CalendarEvent
	if err := s.db.WithContext(ctx).
		Where(
			"calendar_id = ? AND start_time >= ? AND start_time < ?",
			calendarID, from, to,
		).
		Order("start_time ASC").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list events for %s: %w", calendarID, err)
	}

	out := make([]domain.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainEvent(row))
	}
	return out, nil
}

func (s *CalendarGormStore) InsertEvent(
	ctx context.Context,
	calendarID string,
	ev domain.Event,
) (domain.Event, error) {

	row := models.CalendarEvent{
		ID:          uuid.NewString(),
		CalendarID:  calendarID,
		Summary:     ev.Summary,
		Description: ev.Description,
		StartTime:   ev.Start,
		EndTime:     ev.End,
	}

	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Event{}, fmt.Errorf("insert event: %w", err)
	}
	return toDomainEvent(row), nil
}

func (s *CalendarGormStore) UpdateEvent(
	ctx context.Context,
	calendarID string,
	eventID string,
	ev domain.Event,
) (domain.Event, error) {

	var row models.CalendarEvent
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("id = ? AND calendar_id = ?", eventID, calendarID).
			First(&row).Error; err != nil {
			return err
		}

		row.Summary = ev.Summary
		row.Description = ev.Description
		row.StartTime = ev.Start
		row.EndTime = ev.End

		return tx.Save(&row).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Event{}, httperr.ErrBusiness("appointment_not_found")
		}
		return domain.Event{}, fmt.Errorf("update event %s: %w", eventID, err)
	}
	return toDomainEvent(row), nil
}

func (s *CalendarGormStore) DeleteEvent(
	ctx context.Context,
	calendarID string,
	eventID string,
) error {

	res := s.db.WithContext(ctx).
		Where("id = ? AND calendar_id = ?", eventID, calendarID).
		Delete(&models.CalendarEvent{})
	if res.Error != nil {
		return fmt.Errorf("delete event %s: %w", eventID, res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrBusiness("appointment_not_found")
	}
	return nil
}

func toDomainEvent(row models.CalendarEvent) domain.Event {
	return domain.Event{
		ID:          row.ID,
		Summary:     row.Summary,
		Description: row.Description,
		Start:       row.StartTime,
		End:         row.EndTime,
	}
}

// Compile-time check
var _ domain.Calendar = (*CalendarGormStore)(nil)
