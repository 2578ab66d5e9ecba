package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solocrm/internal/models"
	"solocrm/internal/services"
)

func newStatsRouter(leads *stubLeadRepo, contacts *stubContactRepo, companies *stubCompanyRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	svc := services.NewStatsService(leads, contacts, companies, &stubTaskRepo{})
	handler := NewStatsHandler(svc)
	router := gin.New()
	router.GET("/stats", handler.GetSummary)
	return router
}

func TestStatsSummaryOK(t *testing.T) {
	leads := &stubLeadRepo{leads: []models.Lead{
		{Status: models.LeadStatusConverted, Amount: 500, CreatedAt: time.Now()},
		{Status: models.LeadStatusNew, Amount: 100, CreatedAt: time.Now()},
	}}
	router := newStatsRouter(leads, &stubContactRepo{count: 8}, &stubCompanyRepo{count: 2})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var payload map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	for _, key := range []string{
		"totalLeads", "totalRevenue", "conversionRate", "statusDistribution",
		"revenueTrend", "totalContacts", "totalCompanies", "upcomingTasks",
	} {
		assert.Contains(t, payload, key)
	}
	assert.Equal(t, `"50.0"`, string(payload["conversionRate"]))
	assert.Equal(t, `500`, string(payload["totalRevenue"]))
}

func TestStatsSummaryFailure(t *testing.T) {
	leads := &stubLeadRepo{findAllErr: errors.New("pq: connection refused")}
	router := newStatsRouter(leads, &stubContactRepo{}, &stubCompanyRepo{})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stats", nil))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	// The driver error never leaks to the client.
	assert.JSONEq(t, `{"error":"could not load statistics"}`, rec.Body.String())
}
