package handlers

import (
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/camaradigital/gabinete-api/internal/logger"
	"github.com/camaradigital/gabinete-api/internal/reports"
	"github.com/camaradigital/gabinete-api/internal/response"
)

// ReportHandler serves the /api/relatorios routes
type ReportHandler struct {
	voterReports *reports.VoterReportService
	log          *log.Logger
}

// NewReportHandler creates a new report handler
func NewReportHandler(voterReports *reports.VoterReportService) *ReportHandler {
	return &ReportHandler{
		voterReports: voterReports,
		log:          logger.Handler("report"),
	}
}

// VoterReport handles GET /api/relatorios/eleitores. The periodo query
// parameter sets the recent-registrations window in days.
func (h *ReportHandler) VoterReport(c *gin.Context) {
	periodDays := reports.ResolvePeriodDays(c.Query("periodo"))

	report, err := h.voterReports.Generate(time.Now(), periodDays)
	if err != nil {
		h.log.Error("Failed to generate voter report", "error", err)
		response.ErrorWithDetails(c, http.StatusInternalServerError, "Erro ao gerar relatório", err.Error())
		return
	}

	c.JSON(http.StatusOK, report)
}
