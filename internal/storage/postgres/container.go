package postgres

import (
	"fmt"

	"github.com/charmbracelet/log"
	"gorm.io/gorm"

	"github.com/camaradigital/gabinete-api/internal/config"
	"github.com/camaradigital/gabinete-api/internal/logger"
)

// Container wires the database connection and all repositories
type Container struct {
	db           *gorm.DB
	log          *log.Logger
	documentRepo DocumentRepository
	agendaRepo   AgendaRepository
	voterRepo    VoterRepository
}

// NewContainer connects to the database, runs migrations and initializes all
// repositories
func NewContainer(cfg *config.Config) (*Container, error) {
	log := logger.Repository("postgres_container")
	log.Info("Initializing PostgreSQL repository container...")

	db, err := Connect(cfg)
	if err != nil {
		log.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := AutoMigrate(db); err != nil {
		log.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	container := NewContainerWithDB(db)

	if err := container.Health(); err != nil {
		log.Error("Container health check failed", "error", err)
		return nil, fmt.Errorf("container health check failed: %w", err)
	}

	log.Info("PostgreSQL repository container initialized successfully")
	return container, nil
}

// NewContainerWithDB creates a container with an existing database connection
func NewContainerWithDB(db *gorm.DB) *Container {
	return &Container{
		db:           db,
		log:          logger.Repository("postgres_container"),
		documentRepo: NewGormDocumentRepository(db),
		agendaRepo:   NewGormAgendaRepository(db),
		voterRepo:    NewGormVoterRepository(db),
	}
}

// Documents returns the document repository
func (c *Container) Documents() DocumentRepository {
	return c.documentRepo
}

// Agenda returns the agenda repository
func (c *Container) Agenda() AgendaRepository {
	return c.agendaRepo
}

// Voters returns the voter repository
func (c *Container) Voters() VoterRepository {
	return c.voterRepo
}

// Health performs a health check on the database connection and every table
func (c *Container) Health() error {
	c.log.Debug("Performing container health check...")

	if err := HealthCheck(c.db); err != nil {
		c.log.Error("Database health check failed", "error", err)
		return fmt.Errorf("database health check failed: %w", err)
	}

	for _, table := range []string{"documentos", "agenda_eventos", "eleitores"} {
		var count int64
		if err := c.db.Table(table).Count(&count).Error; err != nil {
			c.log.Error("Table health check failed", "table", table, "error", err)
			return fmt.Errorf("table %s health check failed: %w", table, err)
		}
		c.log.Debug("Table health check passed", "table", table)
	}

	c.log.Debug("Container health check completed successfully")
	return nil
}

// Close releases the database connection
func (c *Container) Close() error {
	c.log.Info("Closing PostgreSQL repository container...")

	if c.db == nil {
		c.log.Warn("Database connection is nil, nothing to close")
		return nil
	}

	if err := Close(c.db); err != nil {
		c.log.Error("Failed to close database connection", "error", err)
		return fmt.Errorf("failed to close database connection: %w", err)
	}

	c.documentRepo = nil
	c.agendaRepo = nil
	c.voterRepo = nil
	c.db = nil

	c.log.Info("PostgreSQL repository container closed successfully")
	return nil
}

// GetDB returns the underlying database connection
func (c *Container) GetDB() *gorm.DB {
	return c.db
}
