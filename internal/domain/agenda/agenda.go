package agenda

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Event represents a scheduled entry in the office calendar
type Event struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Title        string         `json:"titulo" gorm:"column:titulo;not null"`
	EventDate    time.Time      `json:"dataEvento" gorm:"column:data_evento;not null"`
	StartTime    string         `json:"horaInicio" gorm:"column:hora_inicio;not null"`
	EndTime      string         `json:"horaFim" gorm:"column:hora_fim;not null"`
	Location     string         `json:"local" gorm:"column:local;not null"`
	Kind         Kind           `json:"tipo" gorm:"column:tipo;not null"`
	Description  string         `json:"descricao" gorm:"column:descricao"`
	Participants pq.StringArray `json:"participantes" gorm:"column:participantes;type:text[]"`
	Status       Status         `json:"status" gorm:"column:status;not null;default:'Agendado'"`
	CreatedAt    time.Time      `json:"dataCriacao" gorm:"column:data_criacao;not null"`
	Responsible  string         `json:"responsavel" gorm:"column:responsavel"`
	Notes        string         `json:"observacoes" gorm:"column:observacoes"`
}

// TableName overrides the table name used by GORM
func (Event) TableName() string {
	return "agenda_eventos"
}

// BeforeCreate sets a UUID and fills defaults before creating the record
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	if e.Status == "" {
		e.Status = StatusScheduled
	}
	return nil
}

// Validate checks that all required fields are present and enum values are
// within their declared sets
func (e *Event) Validate() error {
	if e.Title == "" {
		return fmt.Errorf("titulo is required")
	}
	if e.EventDate.IsZero() {
		return fmt.Errorf("dataEvento is required")
	}
	if e.StartTime == "" {
		return fmt.Errorf("horaInicio is required")
	}
	if e.EndTime == "" {
		return fmt.Errorf("horaFim is required")
	}
	if e.Location == "" {
		return fmt.Errorf("local is required")
	}
	if e.Kind == "" {
		return fmt.Errorf("tipo is required")
	}
	if !e.Kind.Valid() {
		return fmt.Errorf("tipo must be one of %v", KindValues())
	}
	if e.Status != "" && !e.Status.Valid() {
		return fmt.Errorf("status must be one of %v", StatusValues())
	}
	return nil
}

// Update carries a partial set of event fields. Only non-nil fields are
// applied, which keeps PUT /api/agenda/:id a merge rather than a replace.
type Update struct {
	Title        *string   `json:"titulo"`
	EventDate    *string   `json:"dataEvento"`
	StartTime    *string   `json:"horaInicio"`
	EndTime      *string   `json:"horaFim"`
	Location     *string   `json:"local"`
	Kind         *Kind     `json:"tipo"`
	Description  *string   `json:"descricao"`
	Participants *[]string `json:"participantes"`
	Status       *Status   `json:"status"`
	Responsible  *string   `json:"responsavel"`
	Notes        *string   `json:"observacoes"`
}

// Validate checks the enum fields that were supplied
func (u *Update) Validate() error {
	if u.Kind != nil && !u.Kind.Valid() {
		return fmt.Errorf("tipo must be one of %v", KindValues())
	}
	if u.Status != nil && !u.Status.Valid() {
		return fmt.Errorf("status must be one of %v", StatusValues())
	}
	return nil
}

// Changes maps the supplied fields to their database columns for a partial
// update. The event date, when present, must already be parsed by the caller.
func (u *Update) Changes(eventDate *time.Time) map[string]any {
	changes := map[string]any{}
	if u.Title != nil {
		changes["titulo"] = *u.Title
	}
	if eventDate != nil {
		changes["data_evento"] = *eventDate
	}
	if u.StartTime != nil {
		changes["hora_inicio"] = *u.StartTime
	}
	if u.EndTime != nil {
		changes["hora_fim"] = *u.EndTime
	}
	if u.Location != nil {
		changes["local"] = *u.Location
	}
	if u.Kind != nil {
		changes["tipo"] = *u.Kind
	}
	if u.Description != nil {
		changes["descricao"] = *u.Description
	}
	if u.Participants != nil {
		changes["participantes"] = pq.StringArray(*u.Participants)
	}
	if u.Status != nil {
		changes["status"] = *u.Status
	}
	if u.Responsible != nil {
		changes["responsavel"] = *u.Responsible
	}
	if u.Notes != nil {
		changes["observacoes"] = *u.Notes
	}
	return changes
}

// Kind is the calendar entry type
type Kind string

const (
	KindOrdinarySession      Kind = "Sessão Ordinária"
	KindExtraordinarySession Kind = "Sessão Extraordinária"
	KindMeeting              Kind = "Reunião"
	KindPublicHearing        Kind = "Audiência Pública"
	KindEvent                Kind = "Evento"
)

// KindValues returns every valid agenda kind
func KindValues() []Kind {
	return []Kind{KindOrdinarySession, KindExtraordinarySession, KindMeeting, KindPublicHearing, KindEvent}
}

// Valid reports whether the kind is within the declared set
func (k Kind) Valid() bool {
	return slices.Contains(KindValues(), k)
}

// Status is the scheduling state of a calendar entry
type Status string

const (
	StatusScheduled  Status = "Agendado"
	StatusInProgress Status = "Em Andamento"
	StatusCompleted  Status = "Concluído"
	StatusCancelled  Status = "Cancelado"
)

// StatusValues returns every valid agenda status
func StatusValues() []Status {
	return []Status{StatusScheduled, StatusInProgress, StatusCompleted, StatusCancelled}
}

// Valid reports whether the status is within the declared set
func (s Status) Valid() bool {
	return slices.Contains(StatusValues(), s)
}
