package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/camaradigital/gabinete-api/internal/domain/agenda"
	"github.com/camaradigital/gabinete-api/internal/domain/voter"
	"github.com/camaradigital/gabinete-api/internal/handlers"
	"github.com/camaradigital/gabinete-api/internal/reports"
	"github.com/camaradigital/gabinete-api/internal/storage/migrations"
	"github.com/camaradigital/gabinete-api/internal/storage/postgres"
	"github.com/camaradigital/gabinete-api/internal/storage/uploads"
)

const testMaxFileSize = 10 * 1024 * 1024

// newTestServer wires a full router against an in-memory database and a
// temp-dir upload store, mirroring the production route table.
func newTestServer(t *testing.T) (*gin.Engine, *postgres.Container) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(migrations.AllModels()...))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	container := postgres.NewContainerWithDB(db)

	store, err := uploads.NewLocalStore(t.TempDir())
	require.NoError(t, err)

	gin.SetMode(gin.TestMode)
	router := gin.New()

	documentHandler := handlers.NewDocumentHandler(container.Documents(), store, testMaxFileSize)
	agendaHandler := handlers.NewAgendaHandler(container.Agenda())
	voterHandler := handlers.NewVoterHandler(container.Voters(), store, testMaxFileSize)
	reportHandler := handlers.NewReportHandler(reports.NewVoterReportService(container.Voters()))
	uploadsHandler := handlers.NewUploadsHandler(store)

	router.GET("/uploads/:object", uploadsHandler.ServeObject)

	api := router.Group("/api")
	{
		documents := api.Group("/documentos")
		{
			documents.POST("", documentHandler.CreateDocument)
			documents.GET("", documentHandler.ListDocuments)
			documents.GET("/:id", documentHandler.GetDocument)
			documents.PUT("/:id", documentHandler.UpdateDocument)
		}

		events := api.Group("/agenda")
		{
			events.POST("", agendaHandler.CreateEvent)
			events.GET("", agendaHandler.ListEvents)
			events.GET("/eventos/hoje", agendaHandler.TodayEvents)
			events.GET("/:id", agendaHandler.GetEvent)
			events.PUT("/:id", agendaHandler.UpdateEvent)
			events.DELETE("/:id", agendaHandler.DeleteEvent)
		}

		voters := api.Group("/eleitores")
		{
			voters.POST("", voterHandler.CreateVoter)
			voters.GET("", voterHandler.ListVoters)
		}

		api.GET("/relatorios/eleitores", reportHandler.VoterReport)
	}

	return router, container
}

func doRequest(router *gin.Engine, method, target string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, target, body)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func multipartForm(t *testing.T, fields map[string]string, fileField, fileName, fileContent string) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	for key, value := range fields {
		require.NoError(t, mw.WriteField(key, value))
	}
	if fileField != "" {
		fw, err := mw.CreateFormFile(fileField, fileName)
		require.NoError(t, err)
		_, err = fw.Write([]byte(fileContent))
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())
	return body, mw.FormDataContentType()
}

func TestCreateDocumentMissingNumber(t *testing.T) {
	router, _ := newTestServer(t)

	body, contentType := multipartForm(t, map[string]string{
		"ano":      "2024",
		"autor":    "Ver. Maria Souza",
		"assunto":  "Iluminação pública",
		"conteudo": "Solicita reparo na iluminação",
		"tipo":     "Requerimento",
	}, "", "", "")

	w := doRequest(router, http.MethodPost, "/api/documentos", body, contentType)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Contains(t, resp["error"], "numero")
}

func TestCreateDocumentWithAttachment(t *testing.T) {
	router, _ := newTestServer(t)

	body, contentType := multipartForm(t, map[string]string{
		"numero":   "012",
		"ano":      "2024",
		"autor":    "Ver. Maria Souza",
		"assunto":  "Iluminação pública",
		"conteudo": "Solicita reparo na iluminação da Rua das Flores",
		"tipo":     "Requerimento",
	}, "anexos", "parecer.pdf", "%PDF-1.4 conteudo")

	w := doRequest(router, http.MethodPost, "/api/documentos", body, contentType)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID          string   `json:"id"`
		Number      string   `json:"numero"`
		Status      string   `json:"situacao"`
		Attachments []string `json:"anexos"`
	}
	decodeJSON(t, w, &created)

	assert.NotEmpty(t, created.ID)
	_, err := uuid.Parse(created.ID)
	assert.NoError(t, err)
	assert.Equal(t, "012", created.Number)
	assert.Equal(t, "Em Tramitação", created.Status)
	require.Len(t, created.Attachments, 1)
	assert.True(t, strings.HasPrefix(created.Attachments[0], "/uploads/"))
	assert.True(t, strings.HasSuffix(created.Attachments[0], "-parecer.pdf"))

	// the stored attachment is served back under its public path
	w = doRequest(router, http.MethodGet, created.Attachments[0], nil, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "%PDF-1.4 conteudo", w.Body.String())
}

func TestListDocumentsInvalidYearMatchesNothing(t *testing.T) {
	router, _ := newTestServer(t)

	body, contentType := multipartForm(t, map[string]string{
		"numero":   "001",
		"ano":      "2024",
		"autor":    "Ver. João Lima",
		"assunto":  "Pavimentação",
		"conteudo": "Indica pavimentação do bairro",
		"tipo":     "Indicação",
	}, "", "", "")
	w := doRequest(router, http.MethodPost, "/api/documentos", body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/documentos?ano=abc", nil, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestUpdateDocumentKeepsStatusWhenOmitted(t *testing.T) {
	router, _ := newTestServer(t)

	body, contentType := multipartForm(t, map[string]string{
		"numero":   "007",
		"ano":      "2024",
		"autor":    "Ver. João Lima",
		"assunto":  "Transporte escolar",
		"conteudo": "Solicita ampliação das linhas",
		"tipo":     "Requerimento",
		"situacao": "Aprovado",
	}, "", "", "")
	w := doRequest(router, http.MethodPost, "/api/documentos", body, contentType)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	decodeJSON(t, w, &created)

	// replace without situacao: the stored status carries over instead of
	// being blanked
	body, contentType = multipartForm(t, map[string]string{
		"numero":   "007",
		"ano":      "2024",
		"autor":    "Ver. João Lima",
		"assunto":  "Transporte escolar e rural",
		"conteudo": "Solicita ampliação das linhas",
		"tipo":     "Requerimento",
	}, "", "", "")
	w = doRequest(router, http.MethodPut, "/api/documentos/"+created.ID, body, contentType)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/documentos/"+created.ID, nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var stored struct {
		Subject string `json:"assunto"`
		Status  string `json:"situacao"`
	}
	decodeJSON(t, w, &stored)
	assert.Equal(t, "Transporte escolar e rural", stored.Subject)
	assert.Equal(t, "Aprovado", stored.Status)
}

func TestUpdateDocumentNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	body, contentType := multipartForm(t, map[string]string{"numero": "001"}, "", "", "")
	w := doRequest(router, http.MethodPut, "/api/documentos/"+uuid.NewString(), body, contentType)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Documento não encontrado", resp["error"])
}

func TestCreateEvent(t *testing.T) {
	router, _ := newTestServer(t)

	payload := map[string]any{
		"titulo":        "Sessão Ordinária",
		"dataEvento":    "2025-03-10",
		"horaInicio":    "19:00",
		"horaFim":       "22:00",
		"local":         "Plenário",
		"tipo":          "Sessão Ordinária",
		"participantes": []string{"Mesa Diretora"},
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	w := doRequest(router, http.MethodPost, "/api/agenda", bytes.NewBuffer(raw), "application/json")

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID     string `json:"id"`
		Status string `json:"status"`
	}
	decodeJSON(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Agendado", created.Status)
}

func TestCreateEventInvalidDate(t *testing.T) {
	router, _ := newTestServer(t)

	payload := map[string]any{
		"titulo":     "Reunião",
		"dataEvento": "10/03/2025",
		"horaInicio": "09:00",
		"horaFim":    "10:00",
		"local":      "Gabinete",
		"tipo":       "Reunião",
	}
	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	w := doRequest(router, http.MethodPost, "/api/agenda", bytes.NewBuffer(raw), "application/json")

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Contains(t, resp["error"], "dataEvento")
}

func TestGetEventNotFound(t *testing.T) {
	router, _ := newTestServer(t)

	w := doRequest(router, http.MethodGet, "/api/agenda/"+uuid.NewString(), nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Evento não encontrado", resp["error"])
}

func TestDeleteEvent(t *testing.T) {
	router, container := newTestServer(t)

	event := &agenda.Event{
		Title:     "Audiência Pública",
		EventDate: time.Date(2025, 4, 2, 0, 0, 0, 0, time.UTC),
		StartTime: "14:00",
		EndTime:   "17:00",
		Location:  "Plenário",
		Kind:      agenda.KindPublicHearing,
	}
	require.NoError(t, container.Agenda().Create(event))

	w := doRequest(router, http.MethodDelete, "/api/agenda/"+event.ID.String(), nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = doRequest(router, http.MethodGet, "/api/agenda/"+event.ID.String(), nil, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	// deleting again still yields 204
	w = doRequest(router, http.MethodDelete, "/api/agenda/"+event.ID.String(), nil, "")
	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestTodayEvents(t *testing.T) {
	router, container := newTestServer(t)

	now := time.Now()
	today := func(hour int) time.Time {
		return time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	}

	seed := []struct {
		title string
		date  time.Time
		start string
	}{
		{"Encerramento", today(18), "19:00"},
		{"Abertura", today(8), "08:00"},
		{"Audiência", today(12), "14:00"},
		{"Sessão de amanhã", today(9).AddDate(0, 0, 1), "09:00"},
	}
	for _, s := range seed {
		require.NoError(t, container.Agenda().Create(&agenda.Event{
			Title:     s.title,
			EventDate: s.date,
			StartTime: s.start,
			EndTime:   "23:00",
			Location:  "Plenário",
			Kind:      agenda.KindMeeting,
		}))
	}

	w := doRequest(router, http.MethodGet, "/api/agenda/eventos/hoje", nil, "")
	require.Equal(t, http.StatusOK, w.Code)

	var events []struct {
		Title string `json:"titulo"`
	}
	decodeJSON(t, w, &events)

	titles := make([]string, 0, len(events))
	for _, e := range events {
		titles = append(titles, e.Title)
	}
	assert.Equal(t, []string{"Abertura", "Audiência", "Encerramento"}, titles)
}

func TestUpdateEventMergesFields(t *testing.T) {
	router, container := newTestServer(t)

	event := &agenda.Event{
		Title:       "Reunião com secretaria",
		EventDate:   time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Location:    "Gabinete",
		Kind:        agenda.KindMeeting,
		Responsible: "Chefe de gabinete",
	}
	require.NoError(t, container.Agenda().Create(event))

	raw, err := json.Marshal(map[string]any{
		"status": "Concluído",
		"local":  "Sala de reuniões",
	})
	require.NoError(t, err)

	w := doRequest(router, http.MethodPut, "/api/agenda/"+event.ID.String(), bytes.NewBuffer(raw), "application/json")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated struct {
		Title       string `json:"titulo"`
		Location    string `json:"local"`
		Status      string `json:"status"`
		Responsible string `json:"responsavel"`
	}
	decodeJSON(t, w, &updated)
	assert.Equal(t, "Reunião com secretaria", updated.Title)
	assert.Equal(t, "Sala de reuniões", updated.Location)
	assert.Equal(t, "Concluído", updated.Status)
	assert.Equal(t, "Chefe de gabinete", updated.Responsible)
}

func TestCreateVoterWithPhoto(t *testing.T) {
	router, _ := newTestServer(t)

	body, contentType := multipartForm(t, map[string]string{
		"nome":           "Ana Pereira",
		"dataNascimento": "1990-06-15",
		"endereco":       "Rua das Flores, 100",
		"bairro":         "Centro",
		"telefone":       "11 98765-4321",
	}, "foto", "ana.jpg", "fake-jpeg-bytes")

	w := doRequest(router, http.MethodPost, "/api/eleitores", body, contentType)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID    string `json:"id"`
		Name  string `json:"nome"`
		Photo string `json:"foto"`
	}
	decodeJSON(t, w, &created)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Ana Pereira", created.Name)
	assert.True(t, strings.HasPrefix(created.Photo, "/uploads/"))
}

func TestVoterReportEndpoint(t *testing.T) {
	router, container := newTestServer(t)

	now := time.Now()
	otherMonth := time.Month(int(now.Month())%12 + 1)
	seed := []*voter.Voter{
		{
			Name:         "Ana Pereira",
			BirthDate:    time.Date(1990, now.Month(), 10, 0, 0, 0, 0, time.UTC),
			Address:      "Rua A, 1",
			Neighborhood: "Centro",
			Phone:        "11 1111-1111",
			RegisteredAt: now.AddDate(0, 0, -3),
		},
		{
			Name:         "Bruno Costa",
			BirthDate:    time.Date(1985, otherMonth, 20, 0, 0, 0, 0, time.UTC),
			Address:      "Rua B, 2",
			Neighborhood: "Centro",
			Phone:        "11 2222-2222",
			RegisteredAt: now.AddDate(0, 0, -90),
		},
		{
			Name:         "Carla Dias",
			BirthDate:    time.Date(2000, otherMonth, 5, 0, 0, 0, 0, time.UTC),
			Address:      "Rua C, 3",
			Neighborhood: "Jardim",
			Phone:        "11 3333-3333",
			RegisteredAt: now.AddDate(0, 0, -90),
		},
	}
	for _, v := range seed {
		require.NoError(t, container.Voters().Create(v))
	}

	// a non-numeric periodo falls back to the 30-day default window
	w := doRequest(router, http.MethodGet, "/api/relatorios/eleitores?periodo=abc", nil, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var report struct {
		Total          int64 `json:"totalEleitores"`
		ByNeighborhood []struct {
			Name  string `json:"nome"`
			Count int64  `json:"quantidade"`
		} `json:"porBairro"`
		Birthdays []struct {
			Name string `json:"nome"`
		} `json:"aniversariantes"`
		Recent []struct {
			Name string `json:"nome"`
		} `json:"novosCadastros"`
	}
	decodeJSON(t, w, &report)

	assert.Equal(t, int64(3), report.Total)
	require.Len(t, report.ByNeighborhood, 2)
	assert.Equal(t, "Centro", report.ByNeighborhood[0].Name)
	assert.Equal(t, int64(2), report.ByNeighborhood[0].Count)
	require.Len(t, report.Birthdays, 1)
	assert.Equal(t, "Ana Pereira", report.Birthdays[0].Name)
	require.Len(t, report.Recent, 1)
	assert.Equal(t, "Ana Pereira", report.Recent[0].Name)
}

func TestServeMissingUpload(t *testing.T) {
	router, _ := newTestServer(t)

	w := doRequest(router, http.MethodGet, "/uploads/nao-existe.pdf", nil, "")

	assert.Equal(t, http.StatusNotFound, w.Code)

	var resp map[string]string
	decodeJSON(t, w, &resp)
	assert.Equal(t, "Arquivo não encontrado", resp["error"])
}
