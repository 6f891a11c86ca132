package postgres

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/camaradigital/gabinete-api/internal/domain/document"
	"github.com/camaradigital/gabinete-api/internal/logger"
)

// GormDocumentRepository implements DocumentRepository using GORM
type GormDocumentRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewGormDocumentRepository creates a new document repository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{
		db:  db,
		log: logger.Repository("document"),
	}
}

func (r *GormDocumentRepository) Create(doc *document.Document) error {
	r.log.Debug("Creating document", "numero", doc.Number, "tipo", doc.Kind)

	if err := doc.Validate(); err != nil {
		r.log.Error("Document validation failed", "error", err)
		return fmt.Errorf("document validation failed: %w", err)
	}

	if err := r.db.Create(doc).Error; err != nil {
		r.log.Error("Failed to create document", "error", err, "numero", doc.Number)
		return fmt.Errorf("failed to create document: %w", err)
	}

	r.log.Info("Document created successfully", "id", doc.ID, "numero", doc.Number)
	return nil
}

func (r *GormDocumentRepository) GetByID(id string) (*document.Document, error) {
	r.log.Debug("retrieving document by ID", "document_id", id)

	docID, err := uuid.Parse(id)
	if err != nil {
		r.log.Debug("Invalid document ID format", "id", id, "error", err)
		return nil, ErrNotFound
	}

	var doc document.Document
	if err := r.db.First(&doc, "id = ?", docID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Debug("Document not found", "id", id)
			return nil, ErrNotFound
		}
		r.log.Error("Failed to get document by ID", "id", id, "error", err)
		return nil, fmt.Errorf("failed to get document by ID: %w", err)
	}

	return &doc, nil
}

// List returns the documents matching the filter, newest submission first
func (r *GormDocumentRepository) List(filter DocumentFilter) ([]*document.Document, error) {
	docs := make([]*document.Document, 0)

	q := filter.Apply(r.db.Model(&document.Document{}))
	if err := q.Order("data_apresentacao DESC").Find(&docs).Error; err != nil {
		r.log.Error("Failed to list documents", "error", err)
		return nil, fmt.Errorf("failed to list documents: %w", err)
	}

	r.log.Debug("Retrieved documents", "count", len(docs))
	return docs, nil
}

// Replace overwrites every field of an existing document. Documents have
// whole-record replace semantics, unlike agenda events.
func (r *GormDocumentRepository) Replace(doc *document.Document) error {
	r.log.Debug("Replacing document", "id", doc.ID)

	if err := doc.Validate(); err != nil {
		r.log.Error("Document validation failed", "error", err)
		return fmt.Errorf("document validation failed: %w", err)
	}

	var existing document.Document
	if err := r.db.First(&existing, "id = ?", doc.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		r.log.Error("Failed to check document existence", "id", doc.ID, "error", err)
		return fmt.Errorf("failed to check document existence: %w", err)
	}

	if err := r.db.Save(doc).Error; err != nil {
		r.log.Error("Failed to replace document", "error", err, "id", doc.ID)
		return fmt.Errorf("failed to replace document: %w", err)
	}

	r.log.Info("Document replaced successfully", "id", doc.ID, "numero", doc.Number)
	return nil
}
