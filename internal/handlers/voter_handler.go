package handlers

import (
	"errors"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/camaradigital/gabinete-api/internal/dates"
	"github.com/camaradigital/gabinete-api/internal/domain/voter"
	"github.com/camaradigital/gabinete-api/internal/logger"
	"github.com/camaradigital/gabinete-api/internal/response"
	"github.com/camaradigital/gabinete-api/internal/storage/postgres"
	"github.com/camaradigital/gabinete-api/internal/storage/uploads"
)

// VoterHandler serves the /api/eleitores routes
type VoterHandler struct {
	voterRepo   postgres.VoterRepository
	store       uploads.Store
	maxFileSize int64
	log         *log.Logger
}

// NewVoterHandler creates a new voter handler
func NewVoterHandler(voterRepo postgres.VoterRepository, store uploads.Store, maxFileSize int64) *VoterHandler {
	return &VoterHandler{
		voterRepo:   voterRepo,
		store:       store,
		maxFileSize: maxFileSize,
		log:         logger.Handler("voter"),
	}
}

// CreateVoter handles POST /api/eleitores
func (h *VoterHandler) CreateVoter(c *gin.Context) {
	v := &voter.Voter{
		Name:         c.PostForm("nome"),
		Address:      c.PostForm("endereco"),
		Neighborhood: c.PostForm("bairro"),
		Phone:        c.PostForm("telefone"),
		Email:        c.PostForm("email"),
		Notes:        c.PostForm("observacoes"),
	}

	if raw := c.PostForm("dataNascimento"); raw != "" {
		birthDate, err := dates.Parse(raw)
		if err != nil {
			response.BadRequest(c, "dataNascimento must be a valid date")
			return
		}
		v.BirthDate = birthDate
	}

	photo, err := saveFormFile(c, h.store, "foto", h.maxFileSize)
	if err != nil {
		h.log.Error("Failed to store voter photo", "error", err)
		response.BadRequest(c, err.Error())
		return
	}
	v.Photo = photo

	if err := h.voterRepo.Create(v); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, v)
}

// ListVoters handles GET /api/eleitores
func (h *VoterHandler) ListVoters(c *gin.Context) {
	voters, err := h.voterRepo.List()
	if err != nil {
		h.log.Error("Failed to list voters", "error", err)
		response.Internal(c, "Erro ao listar eleitores")
		return
	}

	c.JSON(http.StatusOK, voters)
}

// UploadsHandler serves stored attachments under /uploads
type UploadsHandler struct {
	store uploads.Store
	log   *log.Logger
}

// NewUploadsHandler creates a new uploads handler
func NewUploadsHandler(store uploads.Store) *UploadsHandler {
	return &UploadsHandler{
		store: store,
		log:   logger.Handler("uploads"),
	}
}

// ServeObject handles GET /uploads/:object, streaming the stored binary
// regardless of the configured backend
func (h *UploadsHandler) ServeObject(c *gin.Context) {
	object := c.Param("object")

	rc, err := h.store.Open(c.Request.Context(), object)
	if err != nil {
		if errors.Is(err, uploads.ErrObjectNotFound) {
			response.NotFound(c, "Arquivo não encontrado")
			return
		}
		h.log.Error("Failed to open stored object", "object", object, "error", err)
		response.Internal(c, "Erro ao abrir arquivo")
		return
	}
	defer rc.Close()

	serveStream(c, object, rc)
}
