package postgres

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/camaradigital/gabinete-api/internal/domain/agenda"
	"github.com/camaradigital/gabinete-api/internal/logger"
)

// GormAgendaRepository implements AgendaRepository using GORM
type GormAgendaRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewGormAgendaRepository creates a new agenda repository
func NewGormAgendaRepository(db *gorm.DB) *GormAgendaRepository {
	return &GormAgendaRepository{
		db:  db,
		log: logger.Repository("agenda"),
	}
}

func (r *GormAgendaRepository) Create(event *agenda.Event) error {
	r.log.Debug("Creating agenda event", "titulo", event.Title, "tipo", event.Kind)

	if err := event.Validate(); err != nil {
		r.log.Error("Agenda event validation failed", "error", err)
		return fmt.Errorf("agenda event validation failed: %w", err)
	}

	if err := r.db.Create(event).Error; err != nil {
		r.log.Error("Failed to create agenda event", "error", err, "titulo", event.Title)
		return fmt.Errorf("failed to create agenda event: %w", err)
	}

	r.log.Info("Agenda event created successfully", "id", event.ID, "titulo", event.Title)
	return nil
}

func (r *GormAgendaRepository) GetByID(id string) (*agenda.Event, error) {
	r.log.Debug("retrieving agenda event by ID", "event_id", id)

	eventID, err := uuid.Parse(id)
	if err != nil {
		r.log.Debug("Invalid agenda event ID format", "id", id, "error", err)
		return nil, ErrNotFound
	}

	var event agenda.Event
	if err := r.db.First(&event, "id = ?", eventID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("Agenda event not found", "id", id)
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get agenda event by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get agenda event by ID: %w", err)
	}

	return &event, nil
}

// List returns the events matching the filter, earliest event date first
func (r *GormAgendaRepository) List(filter AgendaFilter) ([]*agenda.Event, error) {
	events := make([]*agenda.Event, 0)

	q := filter.Apply(r.db.Model(&agenda.Event{}))
	if err := q.Order("data_evento ASC").Find(&events).Error; err != nil {
		r.log.Error("Failed to list agenda events", "error", err)
		return nil, fmt.Errorf("failed to list agenda events: %w", err)
	}

	r.log.Debug("Retrieved agenda events", "count", len(events))
	return events, nil
}

// Update applies a partial set of column changes to an existing event and
// returns the merged record. Agenda events have merge semantics, unlike
// documents.
func (r *GormAgendaRepository) Update(id string, changes map[string]any) (*agenda.Event, error) {
	r.log.Debug("Updating agenda event", "event_id", id, "fields", len(changes))

	event, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	if len(changes) > 0 {
		if err := r.db.Model(event).Updates(changes).Error; err != nil {
			r.log.Error("Failed to update agenda event", "error", err, "id", id)
			return nil, fmt.Errorf("failed to update agenda event: %w", err)
		}
	}

	updated, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}

	r.log.Info("Agenda event updated successfully", "id", id)
	return updated, nil
}

// Delete removes an event by id. Deleting an absent event is not an error.
func (r *GormAgendaRepository) Delete(id string) error {
	r.log.Debug("deleting agenda event", "event_id", id)

	eventID, err := uuid.Parse(id)
	if err != nil {
		r.log.Debug("Invalid agenda event ID format", "id", id, "error", err)
		return nil
	}

	if err := r.db.Delete(&agenda.Event{}, "id = ?", eventID).Error; err != nil {
		r.log.Error("Failed to delete agenda event", "error", err, "id", id)
		return fmt.Errorf("failed to delete agenda event: %w", err)
	}

	r.log.Info("Agenda event deleted", "id", id)
	return nil
}

// EventsOnDay returns the events falling within the calendar day of the
// given instant, in the instant's own location, ordered by start time. The
// window is [start of day, start of next day).
func (r *GormAgendaRepository) EventsOnDay(day time.Time) ([]*agenda.Event, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	end := start.AddDate(0, 0, 1)

	r.log.Debug("retrieving events of the day", "start", start, "end", end)

	events := make([]*agenda.Event, 0)
	err := r.db.
		Where("data_evento >= ? AND data_evento < ?", start, end).
		Order("hora_inicio ASC").
		Find(&events).Error
	if err != nil {
		r.log.Error("Failed to list events of the day", "error", err)
		return nil, fmt.Errorf("failed to list events of the day: %w", err)
	}

	r.log.Debug("Retrieved events of the day", "count", len(events))
	return events, nil
}
