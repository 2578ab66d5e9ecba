package handlers

import (
	"context"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

// Repo stubs for handler tests. Embedding the interface satisfies the full
// contract; only the methods a test exercises are overridden.

type stubLeadRepo struct {
	repositories.LeadRepository

	leads      []models.Lead
	findAllErr error

	patchResult *models.Lead
	patchErr    error

	deleted   bool
	deleteErr error

	searchHits []models.Lead
}

func (s *stubLeadRepo) Create(_ context.Context, lead *models.Lead) error {
	lead.ID = int64(len(s.leads) + 1)
	s.leads = append(s.leads, *lead)
	return nil
}

func (s *stubLeadRepo) FindAllWithContacts(context.Context) ([]models.Lead, error) {
	return s.leads, s.findAllErr
}

func (s *stubLeadRepo) FindAll(context.Context) ([]models.Lead, error) {
	return s.leads, s.findAllErr
}

func (s *stubLeadRepo) Patch(context.Context, int64, models.LeadPatch) (*models.Lead, error) {
	return s.patchResult, s.patchErr
}

func (s *stubLeadRepo) Delete(context.Context, int64) (bool, error) {
	return s.deleted, s.deleteErr
}

func (s *stubLeadRepo) SearchByTitle(context.Context, string, int) ([]models.Lead, error) {
	return s.searchHits, nil
}

type stubTaskRepo struct {
	repositories.TaskRepository
	stored []models.Task
}

func (s *stubTaskRepo) Store(_ context.Context, task *models.Task) error {
	task.ID = int64(len(s.stored) + 1)
	s.stored = append(s.stored, *task)
	return nil
}

func (s *stubTaskRepo) UpcomingOpen(context.Context, int) ([]models.Task, error) {
	return nil, nil
}

type stubInvoiceRepo struct {
	repositories.InvoiceRepository
	created []models.Invoice
}

func (s *stubInvoiceRepo) Create(_ context.Context, invoice *models.Invoice) error {
	invoice.ID = int64(len(s.created) + 1)
	s.created = append(s.created, *invoice)
	return nil
}

type stubActivityRepo struct {
	repositories.ActivityRepository
	created []models.Activity
}

func (s *stubActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	activity.ID = int64(len(s.created) + 1)
	s.created = append(s.created, *activity)
	return nil
}

type stubContactRepo struct {
	repositories.ContactRepository

	byID map[int64]*models.Contact

	count    int
	countErr error

	searchHits []models.Contact
}

func (s *stubContactRepo) FindNameAndEmail(_ context.Context, id int64) (*models.Contact, error) {
	return s.byID[id], nil
}

func (s *stubContactRepo) Count(context.Context) (int, error) {
	return s.count, s.countErr
}

func (s *stubContactRepo) Search(context.Context, string, int) ([]models.Contact, error) {
	return s.searchHits, nil
}

type stubCompanyRepo struct {
	repositories.CompanyRepository

	count    int
	countErr error

	searchHits []models.Company
}

func (s *stubCompanyRepo) Count(context.Context) (int, error) {
	return s.count, s.countErr
}

func (s *stubCompanyRepo) SearchByName(context.Context, string, int) ([]models.Company, error) {
	return s.searchHits, nil
}

type stubMailer struct {
	sent []string
}

func (s *stubMailer) SendWelcomeEmail(email, _ string) error {
	s.sent = append(s.sent, email)
	return nil
}

func (s *stubMailer) SendConversionEmail(email, _, _ string) error {
	s.sent = append(s.sent, email)
	return nil
}
