package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/camaradigital/gabinete-api/internal/config"
	"github.com/camaradigital/gabinete-api/internal/handlers"
	"github.com/camaradigital/gabinete-api/internal/logger"
	"github.com/camaradigital/gabinete-api/internal/middleware"
	"github.com/camaradigital/gabinete-api/internal/reports"
	"github.com/camaradigital/gabinete-api/internal/storage/postgres"
	"github.com/camaradigital/gabinete-api/internal/storage/uploads"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	config     *config.Config
	container  *postgres.Container
	store      uploads.Store
}

// New creates a new server instance
func New(cfg *config.Config, container *postgres.Container, store uploads.Store) *Server {
	return &Server{
		config:    cfg,
		container: container,
		store:     store,
	}
}

// Start starts the HTTP server
func (s *Server) Start() error {
	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:    ":" + s.config.Server.Port,
		Handler: router,

		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Get().Info("Starting HTTP server", "port", s.config.Server.Port)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Stop gracefully stops the HTTP server
func (s *Server) Stop(ctx context.Context) error {
	logger.Get().Info("Shutting down HTTP server...")

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}

	return nil
}

// setupRouter configures the HTTP router with middleware and routes
func (s *Server) setupRouter() *gin.Engine {
	if s.config.Server.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	origins := strings.Split(s.config.CORS.AllowOrigins, ",")
	if len(origins) == 1 && origins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = origins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowMethods = strings.Split(s.config.CORS.AllowMethods, ",")
	corsConfig.AllowHeaders = strings.Split(s.config.CORS.AllowHeaders, ",")
	router.Use(cors.New(corsConfig))

	documentHandler := handlers.NewDocumentHandler(s.container.Documents(), s.store, s.config.Upload.MaxFileSize)
	agendaHandler := handlers.NewAgendaHandler(s.container.Agenda())
	voterHandler := handlers.NewVoterHandler(s.container.Voters(), s.store, s.config.Upload.MaxFileSize)
	reportHandler := handlers.NewReportHandler(reports.NewVoterReportService(s.container.Voters()))
	uploadsHandler := handlers.NewUploadsHandler(s.store)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Gabinete API is running",
			"status":  "healthy",
		})
	})

	router.GET("/uploads/:object", uploadsHandler.ServeObject)

	s.setupAPIRoutes(router, documentHandler, agendaHandler, voterHandler, reportHandler)

	return router
}

// setupAPIRoutes configures all API routes
func (s *Server) setupAPIRoutes(
	router *gin.Engine,
	documentHandler *handlers.DocumentHandler,
	agendaHandler *handlers.AgendaHandler,
	voterHandler *handlers.VoterHandler,
	reportHandler *handlers.ReportHandler,
) {
	api := router.Group("/api")
	{
		documents := api.Group("/documentos")
		{
			documents.POST("", documentHandler.CreateDocument)
			documents.GET("", documentHandler.ListDocuments)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.PUT("/:id", documentHandler.UpdateDocument)
		}

		agenda := api.Group("/agenda")
		{
			agenda.POST("", agendaHandler.CreateEvent)
			agenda.GET("", agendaHandler.ListEvents)
			agenda.GET("/eventos/hoje", agendaHandler.TodayEvents)
			agenda.GET("/:id", agendaHandler.GetEvent)
			agenda.PUT("/:id", agendaHandler.UpdateEvent)
			agenda.DELETE("/:id", agendaHandler.DeleteEvent)
		}

		voters := api.Group("/eleitores")
		{
			voters.POST("", voterHandler.CreateVoter)
			voters.GET("", voterHandler.ListVoters)
		}

		relatorios := api.Group("/relatorios")
		{
			relatorios.GET("/eleitores", reportHandler.VoterReport)
		}
	}
}
