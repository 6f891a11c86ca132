package voter

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Voter represents a constituent in the office registry
type Voter struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name         string    `json:"nome" gorm:"column:nome;not null"`
	BirthDate    time.Time `json:"dataNascimento" gorm:"column:data_nascimento;not null"`
	Address      string    `json:"endereco" gorm:"column:endereco;not null"`
	Neighborhood string    `json:"bairro" gorm:"column:bairro;not null"`
	Phone        string    `json:"telefone" gorm:"column:telefone;not null"`
	Email        string    `json:"email" gorm:"column:email"`
	Notes        string    `json:"observacoes" gorm:"column:observacoes"`
	Photo        string    `json:"foto" gorm:"column:foto"`
	RegisteredAt time.Time `json:"dataCadastro" gorm:"column:data_cadastro;not null"`
}

// TableName overrides the table name used by GORM
func (Voter) TableName() string {
	return "eleitores"
}

// BeforeCreate sets a UUID and the registration time before creating the record
func (v *Voter) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	if v.RegisteredAt.IsZero() {
		v.RegisteredAt = time.Now()
	}
	return nil
}

// Validate checks that all required fields are present
func (v *Voter) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("nome is required")
	}
	if v.BirthDate.IsZero() {
		return fmt.Errorf("dataNascimento is required")
	}
	if v.Address == "" {
		return fmt.Errorf("endereco is required")
	}
	if v.Neighborhood == "" {
		return fmt.Errorf("bairro is required")
	}
	if v.Phone == "" {
		return fmt.Errorf("telefone is required")
	}
	return nil
}
