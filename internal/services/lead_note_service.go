package services

import (
	"context"
	"time"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

type LeadNoteService struct {
	Repo repositories.LeadNoteRepository
}

func NewLeadNoteService(repo repositories.LeadNoteRepository) *LeadNoteService {
	return &LeadNoteService{Repo: repo}
}

func (s *LeadNoteService) Create(ctx context.Context, note *models.LeadNote) error {
	if note.CreatedAt.IsZero() {
		note.CreatedAt = time.Now()
	}
	return s.Repo.Create(ctx, note)
}

func (s *LeadNoteService) ListByLead(ctx context.Context, leadID int64) ([]models.LeadNote, error) {
	return s.Repo.FindByLead(ctx, leadID)
}

func (s *LeadNoteService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.Repo.Delete(ctx, id)
}
