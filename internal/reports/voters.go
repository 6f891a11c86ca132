// Package reports composes store queries into composite report payloads.
package reports

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	"github.com/camaradigital/gabinete-api/internal/domain/voter"
	"github.com/camaradigital/gabinete-api/internal/logger"
	"github.com/camaradigital/gabinete-api/internal/storage/postgres"
)

// DefaultPeriodDays is the recent-registrations window used when the periodo
// parameter is absent or not numeric
const DefaultPeriodDays = 30

// VoterReport is the composite payload of GET /api/relatorios/eleitores
type VoterReport struct {
	TotalVoters         int64                        `json:"totalEleitores"`
	ByNeighborhood      []postgres.NeighborhoodCount `json:"porBairro"`
	Birthdays           []*voter.Voter               `json:"aniversariantes"`
	RecentRegistrations []*voter.Voter               `json:"novosCadastros"`
}

// VoterReportService builds voter reports from the registry.
//
// The four sub-queries run as independent reads with no transactional
// snapshot: concurrent writes during generation may leave the sub-results
// mutually inconsistent. Callers accepting the report accept that window.
type VoterReportService struct {
	voters postgres.VoterRepository
	log    *log.Logger
}

// NewVoterReportService creates a new voter report service
func NewVoterReportService(voters postgres.VoterRepository) *VoterReportService {
	return &VoterReportService{
		voters: voters,
		log:    logger.Service("voter_report"),
	}
}

// ResolvePeriodDays maps the raw periodo query parameter to a day count.
// Absent or non-numeric values fall back to the default instead of failing.
func ResolvePeriodDays(raw string) int {
	if raw == "" {
		return DefaultPeriodDays
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days == 0 {
		return DefaultPeriodDays
	}
	return days
}

// Generate runs the four registry reads and assembles the report. Any
// sub-query failure fails the whole report; partial results are never
// returned.
func (s *VoterReportService) Generate(now time.Time, periodDays int) (*VoterReport, error) {
	s.log.Debug("Generating voter report", "period_days", periodDays)

	total, err := s.voters.Count()
	if err != nil {
		return nil, fmt.Errorf("total count failed: %w", err)
	}

	byNeighborhood, err := s.voters.CountByNeighborhood()
	if err != nil {
		return nil, fmt.Errorf("neighborhood grouping failed: %w", err)
	}

	birthdays, err := s.voters.BornInMonth(now.Month())
	if err != nil {
		return nil, fmt.Errorf("birthday listing failed: %w", err)
	}

	since := now.AddDate(0, 0, -periodDays)
	recent, err := s.voters.RegisteredSince(since)
	if err != nil {
		return nil, fmt.Errorf("recent registrations failed: %w", err)
	}

	s.log.Debug("Voter report generated",
		"total", total,
		"neighborhoods", len(byNeighborhood),
		"birthdays", len(birthdays),
		"recent", len(recent))

	return &VoterReport{
		TotalVoters:         total,
		ByNeighborhood:      byNeighborhood,
		Birthdays:           birthdays,
		RecentRegistrations: recent,
	}, nil
}
