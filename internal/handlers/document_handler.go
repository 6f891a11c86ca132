package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/camaradigital/gabinete-api/internal/dates"
	"github.com/camaradigital/gabinete-api/internal/domain/document"
	"github.com/camaradigital/gabinete-api/internal/logger"
	"github.com/camaradigital/gabinete-api/internal/response"
	"github.com/camaradigital/gabinete-api/internal/storage/postgres"
	"github.com/camaradigital/gabinete-api/internal/storage/uploads"
)

// DocumentHandler serves the /api/documentos routes
type DocumentHandler struct {
	documentRepo postgres.DocumentRepository
	store        uploads.Store
	maxFileSize  int64
	log          *log.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentRepo postgres.DocumentRepository, store uploads.Store, maxFileSize int64) *DocumentHandler {
	return &DocumentHandler{
		documentRepo: documentRepo,
		store:        store,
		maxFileSize:  maxFileSize,
		log:          logger.Handler("document"),
	}
}

// documentFromForm builds a document from the multipart form fields. The
// caller decides what to do about attachments.
func (h *DocumentHandler) documentFromForm(c *gin.Context) (*document.Document, error) {
	doc := &document.Document{
		Number:  c.PostForm("numero"),
		Author:  c.PostForm("autor"),
		Subject: c.PostForm("assunto"),
		Status:  document.Status(c.PostForm("situacao")),
		Body:    c.PostForm("conteudo"),
		Notes:   c.PostForm("observacoes"),
		Kind:    document.Kind(c.PostForm("tipo")),
	}

	if raw := c.PostForm("ano"); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("ano must be a number")
		}
		doc.Year = year
	}

	if raw := c.PostForm("dataApresentacao"); raw != "" {
		date, err := dates.Parse(raw)
		if err != nil {
			return nil, errors.New("dataApresentacao must be a valid date")
		}
		doc.SubmissionDate = date
	}

	return doc, nil
}

// CreateDocument handles POST /api/documentos
func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	doc, err := h.documentFromForm(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	attachments, err := saveFormFiles(c, h.store, "anexos", h.maxFileSize)
	if err != nil {
		h.log.Error("Failed to store document attachments", "error", err)
		response.BadRequest(c, err.Error())
		return
	}
	doc.Attachments = attachments

	if err := h.documentRepo.Create(doc); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, doc)
}

// ListDocuments handles GET /api/documentos
func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	filter := postgres.ResolveDocumentFilter(
		c.Query("tipo"),
		c.Query("autor"),
		c.Query("situacao"),
		c.Query("ano"),
	)

	docs, err := h.documentRepo.List(filter)
	if err != nil {
		h.log.Error("Failed to list documents", "error", err)
		response.Internal(c, "Erro ao listar documentos")
		return
	}

	c.JSON(http.StatusOK, docs)
}

// GetDocument handles GET /api/documentos/:id
func (h *DocumentHandler) GetDocument(c *gin.Context) {
	doc, err := h.documentRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "Documento não encontrado")
			return
		}
		h.log.Error("Failed to get document", "error", err)
		response.Internal(c, "Erro ao buscar documento")
		return
	}

	c.JSON(http.StatusOK, doc)
}

// UpdateDocument handles PUT /api/documentos/:id. Documents are replaced
// whole: every field comes from the form, and a new upload set wholly
// replaces the previous attachments when files are provided.
func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	existing, err := h.documentRepo.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			response.NotFound(c, "Documento não encontrado")
			return
		}
		h.log.Error("Failed to get document for update", "error", err)
		response.Internal(c, "Erro ao buscar documento")
		return
	}

	doc, err := h.documentFromForm(c)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	doc.ID = existing.ID
	if doc.SubmissionDate.IsZero() {
		doc.SubmissionDate = existing.SubmissionDate
	}
	if doc.Status == "" {
		doc.Status = existing.Status
	}

	attachments, err := saveFormFiles(c, h.store, "anexos", h.maxFileSize)
	if err != nil {
		h.log.Error("Failed to store document attachments", "error", err)
		response.BadRequest(c, err.Error())
		return
	}
	if len(attachments) > 0 {
		doc.Attachments = attachments
	} else {
		doc.Attachments = existing.Attachments
	}

	if err := h.documentRepo.Replace(doc); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, doc)
}
