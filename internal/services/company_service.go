package services

import (
	"context"
	"time"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

type CompanyService struct {
	Repo repositories.CompanyRepository
}

func NewCompanyService(repo repositories.CompanyRepository) *CompanyService {
	return &CompanyService{Repo: repo}
}

func (s *CompanyService) Create(ctx context.Context, company *models.Company) error {
	if company.CreatedAt.IsZero() {
		company.CreatedAt = time.Now()
	}
	return s.Repo.Create(ctx, company)
}

func (s *CompanyService) List(ctx context.Context) ([]models.Company, error) {
	return s.Repo.FindAll(ctx)
}

func (s *CompanyService) GetByID(ctx context.Context, id int64) (*models.Company, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *CompanyService) Update(ctx context.Context, id int64, patch models.CompanyPatch) (*models.Company, error) {
	return s.Repo.Patch(ctx, id, patch)
}

func (s *CompanyService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.Repo.Delete(ctx, id)
}
