package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solocrm/internal/models"
)

func newLeadFixture() (*LeadService, *fakeLeadRepo, *fakeTaskRepo, *fakeInvoiceRepo, *fakeActivityRepo) {
	leads := &fakeLeadRepo{}
	tasks := &fakeTaskRepo{}
	invoices := &fakeInvoiceRepo{}
	activities := &fakeActivityRepo{}
	contacts := &fakeContactRepo{byID: map[int64]*models.Contact{}}
	conversion := NewConversionService(tasks, invoices, activities, contacts, &fakeMailer{}, nil)
	return NewLeadService(leads, conversion), leads, tasks, invoices, activities
}

func strPtr(s string) *string { return &s }

func statusPtr(s models.LeadStatus) *models.LeadStatus { return &s }

func TestLeadCreateDefaults(t *testing.T) {
	svc, repo, _, _, _ := newLeadFixture()

	lead := &models.Lead{Title: "Audit SEO", Amount: 300}
	require.NoError(t, svc.Create(context.Background(), lead))

	assert.Equal(t, models.LeadStatusNew, lead.Status)
	assert.False(t, lead.CreatedAt.IsZero())
	require.Len(t, repo.created, 1)
}

func TestLeadUpdateFiresChainOnConverted(t *testing.T) {
	svc, repo, tasks, invoices, activities := newLeadFixture()
	repo.patchResult = &models.Lead{ID: 9, Title: "Refonte", Amount: 800, Status: models.LeadStatusConverted}

	updated, err := svc.Update(context.Background(), 9, models.LeadPatch{
		Status: statusPtr(models.LeadStatusConverted),
	})

	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Len(t, tasks.stored, 1)
	assert.Len(t, invoices.created, 1)
	assert.Len(t, activities.created, 1)
}

func TestLeadUpdateWithoutStatusChangeSkipsChain(t *testing.T) {
	svc, repo, tasks, invoices, activities := newLeadFixture()
	// The row already reads "converti"; the patch only renames it.
	repo.patchResult = &models.Lead{ID: 9, Title: "Refonte", Status: models.LeadStatusConverted}

	_, err := svc.Update(context.Background(), 9, models.LeadPatch{Title: strPtr("Refonte v2")})

	require.NoError(t, err)
	assert.Empty(t, tasks.stored)
	assert.Empty(t, invoices.created)
	assert.Empty(t, activities.created)
}

func TestLeadUpdateNonConvertedStatusSkipsChain(t *testing.T) {
	svc, repo, tasks, _, _ := newLeadFixture()
	repo.patchResult = &models.Lead{ID: 9, Status: models.LeadStatusLost}

	_, err := svc.Update(context.Background(), 9, models.LeadPatch{
		Status: statusPtr(models.LeadStatusLost),
	})

	require.NoError(t, err)
	assert.Empty(t, tasks.stored)
}

func TestLeadUpdateMissingRowSkipsChain(t *testing.T) {
	svc, repo, tasks, _, _ := newLeadFixture()
	repo.patchResult = nil

	updated, err := svc.Update(context.Background(), 404, models.LeadPatch{
		Status: statusPtr(models.LeadStatusConverted),
	})

	require.NoError(t, err)
	assert.Nil(t, updated)
	assert.Empty(t, tasks.stored)
}

func TestLeadExportCSV(t *testing.T) {
	svc, repo, _, _, _ := newLeadFixture()
	contactID := int64(3)
	repo.leads = []models.Lead{
		{
			ID: 1, Title: "Site vitrine", Amount: 1200.5, Status: models.LeadStatusInProgress,
			ContactID: &contactID,
			CreatedAt: time.Date(2026, time.February, 3, 10, 0, 0, 0, time.UTC),
			Contact:   &models.ContactName{FirstName: "Marie", LastName: "Durand"},
		},
		{
			ID: 2, Title: "Maintenance", Amount: 90, Status: models.LeadStatusNew,
			CreatedAt: time.Date(2026, time.January, 15, 10, 0, 0, 0, time.UTC),
		},
	}

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Titre;Montant;Statut;Date;Contact", lines[0])
	assert.Equal(t, "Site vitrine;1200.5;en cours;03/02/2026;Marie Durand", lines[1])
	assert.Equal(t, "Maintenance;90;nouveau;15/01/2026;", lines[2])
}

func TestLeadExportCSVEmpty(t *testing.T) {
	svc, _, _, _, _ := newLeadFixture()

	data, err := svc.ExportCSV(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Titre;Montant;Statut;Date;Contact\n", string(data))
}
