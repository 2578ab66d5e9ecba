package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"solocrm/internal/models"
)

func newSearchFixture() (*SearchService, *fakeContactRepo, *fakeCompanyRepo, *fakeLeadRepo) {
	contacts := &fakeContactRepo{}
	companies := &fakeCompanyRepo{}
	leads := &fakeLeadRepo{}
	return NewSearchService(contacts, companies, leads), contacts, companies, leads
}

func TestSearchShortQueryShortCircuits(t *testing.T) {
	for _, query := range []string{"", "a", " a ", "  "} {
		svc, contacts, companies, leads := newSearchFixture()

		results := svc.GlobalSearch(context.Background(), query)

		assert.NotNil(t, results.Contacts)
		assert.NotNil(t, results.Companies)
		assert.NotNil(t, results.Leads)
		assert.Empty(t, results.Contacts)
		assert.Empty(t, results.Companies)
		assert.Empty(t, results.Leads)
		assert.False(t, contacts.searched, "query %q must not hit the store", query)
		assert.False(t, companies.searched, "query %q must not hit the store", query)
		assert.False(t, leads.searched, "query %q must not hit the store", query)
	}
}

func TestSearchSingleCategoryHit(t *testing.T) {
	svc, contacts, companies, leads := newSearchFixture()
	companies.searchHits = []models.Company{{ID: 4, Name: "Tesla Motors"}}

	results := svc.GlobalSearch(context.Background(), "Tesla")

	assert.True(t, contacts.searched)
	assert.True(t, companies.searched)
	assert.True(t, leads.searched)
	assert.Empty(t, results.Contacts)
	assert.Empty(t, results.Leads)
	require.Len(t, results.Companies, 1)
	assert.Equal(t, CompanyHit{ID: 4, Name: "Tesla Motors"}, results.Companies[0])
}

func TestSearchAllCategories(t *testing.T) {
	svc, contacts, companies, leads := newSearchFixture()
	contacts.searchHits = []models.Contact{{ID: 1, FirstName: "Jean", LastName: "Martin", Email: "jean@x.fr"}}
	companies.searchHits = []models.Company{{ID: 2, Name: "Martin & Fils"}}
	leads.searchHits = []models.Lead{{ID: 3, Title: "Devis Martin", Amount: 450}}

	results := svc.GlobalSearch(context.Background(), "martin")

	require.Len(t, results.Contacts, 1)
	assert.Equal(t, ContactHit{ID: 1, FirstName: "Jean", LastName: "Martin", Email: "jean@x.fr"}, results.Contacts[0])
	require.Len(t, results.Companies, 1)
	require.Len(t, results.Leads, 1)
	assert.Equal(t, LeadHit{ID: 3, Title: "Devis Martin", Amount: 450}, results.Leads[0])
}

// Each category query is asked for at most five rows; the cap lives in the
// SQL LIMIT, not in post-filtering.
func TestSearchCapsEachCategoryAtFive(t *testing.T) {
	svc, contacts, companies, leads := newSearchFixture()

	svc.GlobalSearch(context.Background(), "martin")

	assert.Equal(t, 5, contacts.searchLimit)
	assert.Equal(t, 5, companies.searchLimit)
	assert.Equal(t, 5, leads.searchLimit)
}

// A category that errors degrades to an empty list; the others still answer.
func TestSearchDegradesOnCategoryFailure(t *testing.T) {
	svc, contacts, companies, leads := newSearchFixture()
	contacts.searchErr = errors.New("pq: relation missing")
	leads.searchHits = []models.Lead{{ID: 3, Title: "Devis Martin", Amount: 450}}
	companies.searchHits = []models.Company{{ID: 2, Name: "Martin & Fils"}}

	results := svc.GlobalSearch(context.Background(), "martin")

	assert.Empty(t, results.Contacts)
	require.Len(t, results.Companies, 1)
	require.Len(t, results.Leads, 1)
}
