package document

import (
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// Document represents a legislative document held by the office
type Document struct {
	ID             uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Number         string         `json:"numero" gorm:"column:numero;not null"`
	Year           int            `json:"ano" gorm:"column:ano;not null"`
	SubmissionDate time.Time      `json:"dataApresentacao" gorm:"column:data_apresentacao;not null"`
	Author         string         `json:"autor" gorm:"column:autor;not null"`
	Subject        string         `json:"assunto" gorm:"column:assunto;not null"`
	Status         Status         `json:"situacao" gorm:"column:situacao;not null;default:'Em Tramitação'"`
	Body           string         `json:"conteudo" gorm:"column:conteudo;not null"`
	Notes          string         `json:"observacoes" gorm:"column:observacoes"`
	Attachments    pq.StringArray `json:"anexos" gorm:"column:anexos;type:text[]"`
	Kind           Kind           `json:"tipo" gorm:"column:tipo;not null"`
}

// TableName overrides the table name used by GORM
func (Document) TableName() string {
	return "documentos"
}

// BeforeCreate sets a UUID and fills defaults before creating the record
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.SubmissionDate.IsZero() {
		d.SubmissionDate = time.Now()
	}
	if d.Status == "" {
		d.Status = StatusInProgress
	}
	return nil
}

// Validate checks that all required fields are present and enum values are
// within their declared sets
func (d *Document) Validate() error {
	if d.Number == "" {
		return fmt.Errorf("numero is required")
	}
	if d.Year == 0 {
		return fmt.Errorf("ano is required")
	}
	if d.Author == "" {
		return fmt.Errorf("autor is required")
	}
	if d.Subject == "" {
		return fmt.Errorf("assunto is required")
	}
	if d.Body == "" {
		return fmt.Errorf("conteudo is required")
	}
	if d.Kind == "" {
		return fmt.Errorf("tipo is required")
	}
	if !d.Kind.Valid() {
		return fmt.Errorf("tipo must be one of %v", KindValues())
	}
	if d.Status != "" && !d.Status.Valid() {
		return fmt.Errorf("situacao must be one of %v", StatusValues())
	}
	return nil
}

// Status is the processing state of a legislative document
type Status string

const (
	StatusInProgress Status = "Em Tramitação"
	StatusApproved   Status = "Aprovado"
	StatusRejected   Status = "Rejeitado"
	StatusArchived   Status = "Arquivado"
)

// StatusValues returns every valid document status
func StatusValues() []Status {
	return []Status{StatusInProgress, StatusApproved, StatusRejected, StatusArchived}
}

// Valid reports whether the status is within the declared set
func (s Status) Valid() bool {
	return slices.Contains(StatusValues(), s)
}

// Kind is the legislative document type
type Kind string

const (
	KindRequest    Kind = "Requerimento"
	KindLetter     Kind = "Ofício"
	KindIndication Kind = "Indicação"
	KindMotion     Kind = "Moção"
	KindBill       Kind = "Projeto"
)

// KindValues returns every valid document kind
func KindValues() []Kind {
	return []Kind{KindRequest, KindLetter, KindIndication, KindMotion, KindBill}
}

// Valid reports whether the kind is within the declared set
func (k Kind) Valid() bool {
	return slices.Contains(KindValues(), k)
}
