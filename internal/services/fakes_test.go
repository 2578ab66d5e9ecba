package services

import (
	"context"
	"sync"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

// The embedded interface satisfies the full contract; only the methods a
// test actually exercises are overridden, anything else panics loudly.

type fakeTaskRepo struct {
	repositories.TaskRepository
	mu       sync.Mutex
	stored   []models.Task
	storeErr error
	upcoming []models.Task
}

func (f *fakeTaskRepo) Store(_ context.Context, task *models.Task) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.storeErr != nil {
		return f.storeErr
	}
	task.ID = int64(len(f.stored) + 1)
	f.stored = append(f.stored, *task)
	return nil
}

func (f *fakeTaskRepo) UpcomingOpen(context.Context, int) ([]models.Task, error) {
	return f.upcoming, nil
}

type fakeInvoiceRepo struct {
	repositories.InvoiceRepository
	created   []models.Invoice
	createErr error
}

func (f *fakeInvoiceRepo) Create(_ context.Context, invoice *models.Invoice) error {
	if f.createErr != nil {
		return f.createErr
	}
	invoice.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *invoice)
	return nil
}

type fakeActivityRepo struct {
	repositories.ActivityRepository
	created   []models.Activity
	createErr error
}

func (f *fakeActivityRepo) Create(_ context.Context, activity *models.Activity) error {
	if f.createErr != nil {
		return f.createErr
	}
	activity.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *activity)
	return nil
}

type fakeContactRepo struct {
	repositories.ContactRepository
	byID      map[int64]*models.Contact
	lookupErr error

	count    int
	countErr error

	searchHits  []models.Contact
	searchErr   error
	searched    bool
	searchLimit int
}

func (f *fakeContactRepo) FindNameAndEmail(_ context.Context, id int64) (*models.Contact, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	return f.byID[id], nil
}

func (f *fakeContactRepo) Count(context.Context) (int, error) {
	return f.count, f.countErr
}

func (f *fakeContactRepo) Search(_ context.Context, _ string, limit int) ([]models.Contact, error) {
	f.searched = true
	f.searchLimit = limit
	return f.searchHits, f.searchErr
}

type fakeCompanyRepo struct {
	repositories.CompanyRepository
	count    int
	countErr error

	searchHits  []models.Company
	searchErr   error
	searched    bool
	searchLimit int
}

func (f *fakeCompanyRepo) Count(context.Context) (int, error) {
	return f.count, f.countErr
}

func (f *fakeCompanyRepo) SearchByName(_ context.Context, _ string, limit int) ([]models.Company, error) {
	f.searched = true
	f.searchLimit = limit
	return f.searchHits, f.searchErr
}

type fakeLeadRepo struct {
	repositories.LeadRepository
	leads      []models.Lead
	findAllErr error

	created   []models.Lead
	createErr error

	patchResult *models.Lead
	patchErr    error
	patched     []models.LeadPatch

	searchHits  []models.Lead
	searchErr   error
	searched    bool
	searchLimit int
}

func (f *fakeLeadRepo) Create(_ context.Context, lead *models.Lead) error {
	if f.createErr != nil {
		return f.createErr
	}
	lead.ID = int64(len(f.created) + 1)
	f.created = append(f.created, *lead)
	return nil
}

func (f *fakeLeadRepo) FindAll(context.Context) ([]models.Lead, error) {
	return f.leads, f.findAllErr
}

func (f *fakeLeadRepo) FindAllWithContacts(context.Context) ([]models.Lead, error) {
	return f.leads, f.findAllErr
}

func (f *fakeLeadRepo) Patch(_ context.Context, _ int64, patch models.LeadPatch) (*models.Lead, error) {
	f.patched = append(f.patched, patch)
	return f.patchResult, f.patchErr
}

func (f *fakeLeadRepo) SearchByTitle(_ context.Context, _ string, limit int) ([]models.Lead, error) {
	f.searched = true
	f.searchLimit = limit
	return f.searchHits, f.searchErr
}

type sentMail struct {
	kind, email, name, leadTitle string
}

type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
}

func (f *fakeMailer) SendWelcomeEmail(email, name string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{kind: "welcome", email: email, name: name})
	return f.err
}

func (f *fakeMailer) SendConversionEmail(email, name, leadTitle string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = append(f.sent, sentMail{kind: "conversion", email: email, name: name, leadTitle: leadTitle})
	return f.err
}

type fakeNotifier struct {
	messages []string
	err      error
}

func (f *fakeNotifier) Notify(text string) error {
	f.messages = append(f.messages, text)
	return f.err
}
