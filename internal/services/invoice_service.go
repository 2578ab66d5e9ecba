package services

import (
	"context"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

// InvoiceService is read/flip only: invoices are created exclusively by the
// conversion chain.
type InvoiceService struct {
	Repo repositories.InvoiceRepository
}

func NewInvoiceService(repo repositories.InvoiceRepository) *InvoiceService {
	return &InvoiceService{Repo: repo}
}

func (s *InvoiceService) List(ctx context.Context) ([]models.Invoice, error) {
	return s.Repo.FindAllWithContacts(ctx)
}

func (s *InvoiceService) GetByID(ctx context.Context, id int64) (*models.Invoice, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *InvoiceService) SetStatus(ctx context.Context, id int64, status models.InvoiceStatus) (*models.Invoice, error) {
	return s.Repo.UpdateStatus(ctx, id, status)
}
