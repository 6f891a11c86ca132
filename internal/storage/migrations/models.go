package migrations

import (
	"github.com/camaradigital/gabinete-api/internal/domain/agenda"
	"github.com/camaradigital/gabinete-api/internal/domain/document"
	"github.com/camaradigital/gabinete-api/internal/domain/voter"
)

// AllModels returns every model covered by the core-table migration, in
// creation order
func AllModels() []any {
	return []any{
		&document.Document{},
		&agenda.Event{},
		&voter.Voter{},
	}
}
