package postgres

import (
	"errors"
	"time"

	"github.com/camaradigital/gabinete-api/internal/domain/agenda"
	"github.com/camaradigital/gabinete-api/internal/domain/document"
	"github.com/camaradigital/gabinete-api/internal/domain/voter"
)

// ErrNotFound is returned by lookups that matched no record. Handlers map it
// to a 404 response.
var ErrNotFound = errors.New("record not found")

// DocumentRepository defines persistence operations for legislative documents.
// Documents are never deleted.
type DocumentRepository interface {
	Create(doc *document.Document) error
	GetByID(id string) (*document.Document, error)
	List(filter DocumentFilter) ([]*document.Document, error)
	Replace(doc *document.Document) error
}

// AgendaRepository defines persistence operations for calendar events
type AgendaRepository interface {
	Create(event *agenda.Event) error
	GetByID(id string) (*agenda.Event, error)
	List(filter AgendaFilter) ([]*agenda.Event, error)
	Update(id string, changes map[string]any) (*agenda.Event, error)
	Delete(id string) error
	EventsOnDay(day time.Time) ([]*agenda.Event, error)
}

// NeighborhoodCount is one row of the group-by-neighborhood aggregation
type NeighborhoodCount struct {
	Name  string `json:"nome" gorm:"column:nome"`
	Count int64  `json:"quantidade" gorm:"column:quantidade"`
}

// VoterRepository defines persistence operations for the constituent
// registry. Voters are created and listed only; the report queries read the
// same table.
type VoterRepository interface {
	Create(v *voter.Voter) error
	List() ([]*voter.Voter, error)
	Count() (int64, error)
	CountByNeighborhood() ([]NeighborhoodCount, error)
	BornInMonth(month time.Month) ([]*voter.Voter, error)
	RegisteredSince(since time.Time) ([]*voter.Voter, error)
}
