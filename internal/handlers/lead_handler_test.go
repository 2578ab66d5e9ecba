package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solocrm/internal/models"
	"solocrm/internal/services"
)

type leadTestEnv struct {
	router   *gin.Engine
	leads    *stubLeadRepo
	tasks    *stubTaskRepo
	invoices *stubInvoiceRepo
}

func newLeadTestEnv() *leadTestEnv {
	gin.SetMode(gin.TestMode)

	leads := &stubLeadRepo{}
	tasks := &stubTaskRepo{}
	invoices := &stubInvoiceRepo{}
	contacts := &stubContactRepo{byID: map[int64]*models.Contact{}}
	conversion := services.NewConversionService(tasks, invoices, &stubActivityRepo{}, contacts, &stubMailer{}, nil)
	handler := NewLeadHandler(services.NewLeadService(leads, conversion))

	router := gin.New()
	group := router.Group("/leads")
	group.GET("/export/csv", handler.ExportCSV)
	group.POST("", handler.Create)
	group.GET("", handler.List)
	group.GET("/:id", handler.GetByID)
	group.PATCH("/:id", handler.Update)
	group.DELETE("/:id", handler.Delete)

	return &leadTestEnv{router: router, leads: leads, tasks: tasks, invoices: invoices}
}

func (e *leadTestEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func TestLeadPatchToConvertedTriggersAutomation(t *testing.T) {
	env := newLeadTestEnv()
	env.leads.patchResult = &models.Lead{
		ID: 5, Title: "Refonte site", Amount: 2400, Status: models.LeadStatusConverted,
	}

	rec := env.do(http.MethodPatch, "/leads/5", `{"status":"converti"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var lead models.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, models.LeadStatusConverted, lead.Status)

	// The chain ran behind the response.
	require.Len(t, env.tasks.stored, 1)
	assert.Contains(t, env.tasks.stored[0].Title, "Refonte site")
	require.Len(t, env.invoices.created, 1)
	assert.Equal(t, 2400.0, env.invoices.created[0].Amount)
}

func TestLeadPatchMissingRowReturns404(t *testing.T) {
	env := newLeadTestEnv()

	rec := env.do(http.MethodPatch, "/leads/999", `{"status":"converti"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Empty(t, env.tasks.stored)
}

func TestLeadPatchBadIDReturns400(t *testing.T) {
	env := newLeadTestEnv()

	rec := env.do(http.MethodPatch, "/leads/abc", `{"status":"converti"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLeadCreateReturns201(t *testing.T) {
	env := newLeadTestEnv()

	rec := env.do(http.MethodPost, "/leads", `{"title":"Audit","amount":300}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	var lead models.Lead
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &lead))
	assert.Equal(t, models.LeadStatusNew, lead.Status)
}

func TestLeadListEmptyIsJSONArray(t *testing.T) {
	env := newLeadTestEnv()

	rec := env.do(http.MethodGet, "/leads", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestLeadDelete(t *testing.T) {
	env := newLeadTestEnv()
	env.leads.deleted = true

	rec := env.do(http.MethodDelete, "/leads/5", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Lead supprimé avec succès")
}

func TestLeadDeleteMissingReturns404(t *testing.T) {
	env := newLeadTestEnv()
	env.leads.deleted = false

	rec := env.do(http.MethodDelete, "/leads/5", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeadExportCSVDownload(t *testing.T) {
	env := newLeadTestEnv()
	env.leads.leads = []models.Lead{
		{
			ID: 1, Title: "Site vitrine", Amount: 1200, Status: models.LeadStatusNew,
			CreatedAt: time.Date(2026, time.March, 4, 0, 0, 0, 0, time.UTC),
			Contact:   &models.ContactName{FirstName: "Paul", LastName: "Leroy"},
		},
	}

	rec := env.do(http.MethodGet, "/leads/export/csv", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="export-leads-crm.csv"`, rec.Header().Get("Content-Disposition"))
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, rec.Body.String(), "Titre;Montant;Statut;Date;Contact")
	assert.Contains(t, rec.Body.String(), "Site vitrine;1200;nouveau;04/03/2026;Paul Leroy")
}
