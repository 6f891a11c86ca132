package postgres

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/camaradigital/gabinete-api/internal/domain/voter"
	"github.com/camaradigital/gabinete-api/internal/logger"
)

// GormVoterRepository implements VoterRepository using GORM
type GormVoterRepository struct {
	db  *gorm.DB
	log *log.Logger
}

// NewGormVoterRepository creates a new voter repository
func NewGormVoterRepository(db *gorm.DB) *GormVoterRepository {
	return &GormVoterRepository{
		db:  db,
		log: logger.Repository("voter"),
	}
}

func (r *GormVoterRepository) Create(v *voter.Voter) error {
	r.log.Debug("Creating voter", "nome", v.Name, "bairro", v.Neighborhood)

	if err := v.Validate(); err != nil {
		r.log.Error("Voter validation failed", "error", err)
		return fmt.Errorf("voter validation failed: %w", err)
	}

	if err := r.db.Create(v).Error; err != nil {
		r.log.Error("Failed to create voter", "error", err, "nome", v.Name)
		return fmt.Errorf("failed to create voter: %w", err)
	}

	r.log.Info("Voter created successfully", "id", v.ID, "nome", v.Name)
	return nil
}

// List returns all voters, most recently registered first
func (r *GormVoterRepository) List() ([]*voter.Voter, error) {
	voters := make([]*voter.Voter, 0)
	if err := r.db.Order("data_cadastro DESC").Find(&voters).Error; err != nil {
		r.log.Error("Failed to list voters", "error", err)
		return nil, fmt.Errorf("failed to list voters: %w", err)
	}

	r.log.Debug("Retrieved voters", "count", len(voters))
	return voters, nil
}

// Count returns the total number of registered voters
func (r *GormVoterRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&voter.Voter{}).Count(&count).Error; err != nil {
		r.log.Error("Failed to count voters", "error", err)
		return 0, fmt.Errorf("failed to count voters: %w", err)
	}
	return count, nil
}

// CountByNeighborhood groups voters by neighborhood and counts each group.
// Rows come back by count descending; equal counts order by neighborhood
// name so the result is deterministic.
func (r *GormVoterRepository) CountByNeighborhood() ([]NeighborhoodCount, error) {
	rows := make([]NeighborhoodCount, 0)
	err := r.db.Model(&voter.Voter{}).
		Select("bairro AS nome, COUNT(*) AS quantidade").
		Group("bairro").
		Order("quantidade DESC, bairro ASC").
		Scan(&rows).Error
	if err != nil {
		r.log.Error("Failed to group voters by neighborhood", "error", err)
		return nil, fmt.Errorf("failed to group voters by neighborhood: %w", err)
	}

	r.log.Debug("Grouped voters by neighborhood", "groups", len(rows))
	return rows, nil
}

// BornInMonth returns voters whose birth date falls in the given calendar
// month of any year, ordered by birth date ascending
func (r *GormVoterRepository) BornInMonth(month time.Month) ([]*voter.Voter, error) {
	q := r.db.Model(&voter.Voter{})

	// SQLite has no EXTRACT; the in-memory test database needs strftime
	if r.db.Dialector.Name() == "sqlite" {
		q = q.Where("CAST(strftime('%m', data_nascimento) AS INTEGER) = ?", int(month))
	} else {
		q = q.Where("EXTRACT(MONTH FROM data_nascimento) = ?", int(month))
	}

	voters := make([]*voter.Voter, 0)
	if err := q.Order("data_nascimento ASC").Find(&voters).Error; err != nil {
		r.log.Error("Failed to list voters born in month", "month", int(month), "error", err)
		return nil, fmt.Errorf("failed to list voters born in month: %w", err)
	}

	r.log.Debug("Retrieved voters born in month", "month", int(month), "count", len(voters))
	return voters, nil
}

// RegisteredSince returns voters registered at or after the given instant,
// most recent first
func (r *GormVoterRepository) RegisteredSince(since time.Time) ([]*voter.Voter, error) {
	voters := make([]*voter.Voter, 0)
	err := r.db.
		Where("data_cadastro >= ?", since).
		Order("data_cadastro DESC").
		Find(&voters).Error
	if err != nil {
		r.log.Error("Failed to list recent registrations", "since", since, "error", err)
		return nil, fmt.Errorf("failed to list recent registrations: %w", err)
	}

	r.log.Debug("Retrieved recent registrations", "since", since, "count", len(voters))
	return voters, nil
}
