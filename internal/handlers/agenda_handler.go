package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"

	"github.com/camaradigital/gabinete-api/internal/dates"
	"github.com/camaradigital/gabinete-api/internal/domain/agenda"
	"github.com/camaradigital/gabinete-api/internal/logger"
	"github.com/camaradigital/gabinete-api/internal/response"
	"github.com/camaradigital/gabinete-api/internal/storage/postgres"
)

// AgendaHandler serves the /api/agenda routes
type AgendaHandler struct {
	agendaRepo postgres.AgendaRepository
	log        *log.Logger
}

// NewAgendaHandler creates a new agenda handler
func NewAgendaHandler(agendaRepo postgres.AgendaRepository) *AgendaHandler {
	return &AgendaHandler{
		agendaRepo: agendaRepo,
		log:        logger.Handler("agenda"),
	}
}

type createEventRequest struct {
	Title        string        `json:"titulo" binding:"required"`
	EventDate    string        `json:"dataEvento" binding:"required"`
	StartTime    string        `json:"horaInicio" binding:"required"`
	EndTime      string        `json:"horaFim" binding:"required"`
	Location     string        `json:"local" binding:"required"`
	Kind         agenda.Kind   `json:"tipo" binding:"required"`
	Description  string        `json:"descricao"`
	Participants []string      `json:"participantes"`
	Status       agenda.Status `json:"status"`
	Responsible  string        `json:"responsavel"`
	Notes        string        `json:"observacoes"`
}

// CreateEvent handles POST /api/agenda
func (h *AgendaHandler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	eventDate, err := dates.Parse(req.EventDate)
	if err != nil {
		response.BadRequest(c, "dataEvento must be a valid date")
		return
	}

	event := &agenda.Event{
		Title:        req.Title,
		EventDate:    eventDate,
		StartTime:    req.StartTime,
		EndTime:      req.EndTime,
		Location:     req.Location,
		Kind:         req.Kind,
		Description:  req.Description,
		Participants: pq.StringArray(req.Participants),
		Status:       req.Status,
		Responsible:  req.Responsible,
		Notes:        req.Notes,
	}

	if err := h.agendaRepo.Create(event); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, event)
}

// ListEvents handles GET /api/agenda
func (h *AgendaHandler) ListEvents(c *gin.Context) {
	filter := postgres.ResolveAgendaFilter(
		c.Query("tipo"),
		c.Query("status"),
		c.Query("dataInicio"),
		c.Query("dataFim"),
	)

	events, err := h.agendaRepo.List(filter)
	if err != nil {
		h.log.Error("Failed to list agenda events", "error", err)
		response.Internal(c, "Erro ao listar eventos")
		return
	}

	c.JSON(http.StatusOK, events)
}

// GetEvent handles GET /api/agenda/:id
func (h *AgendaHandler) GetEvent(c *gin.Context) {
	event, err := h.agendaRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "Evento não encontrado")
			return
		}
		h.log.Error("Failed to get agenda event", "error", err)
		response.Internal(c, "Erro ao buscar evento")
		return
	}

	c.JSON(http.StatusOK, event)
}

// UpdateEvent handles PUT /api/agenda/:id. Agenda events are merged: only
// the fields supplied in the payload change.
func (h *AgendaHandler) UpdateEvent(c *gin.Context) {
	var upd agenda.Update
	if err := c.ShouldBindJSON(&upd); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := upd.Validate(); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var eventDate *time.Time
	if upd.EventDate != nil {
		parsed, err := dates.Parse(*upd.EventDate)
		if err != nil {
			response.BadRequest(c, "dataEvento must be a valid date")
			return
		}
		eventDate = &parsed
	}

	event, err := h.agendaRepo.Update(c.Param("id"), upd.Changes(eventDate))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "Evento não encontrado")
			return
		}
		response.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles DELETE /api/agenda/:id
func (h *AgendaHandler) DeleteEvent(c *gin.Context) {
	if err := h.agendaRepo.Delete(c.Param("id")); err != nil {
		h.log.Error("Failed to delete agenda event", "error", err)
		response.Internal(c, "Erro ao excluir evento")
		return
	}

	c.Status(http.StatusNoContent)
}

// TodayEvents handles GET /api/agenda/eventos/hoje. "Today" is the calendar
// day in the server's local time zone.
func (h *AgendaHandler) TodayEvents(c *gin.Context) {
	events, err := h.agendaRepo.EventsOnDay(time.Now())
	if err != nil {
		h.log.Error("Failed to list today's events", "error", err)
		response.Internal(c, "Erro ao listar eventos do dia")
		return
	}

	c.JSON(http.StatusOK, events)
}
