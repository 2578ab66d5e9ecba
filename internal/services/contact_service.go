package services

import (
	"context"
	"log"
	"time"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

type ContactService struct {
	Repo   repositories.ContactRepository
	Mailer Mailer
}

func NewContactService(repo repositories.ContactRepository, mailer Mailer) *ContactService {
	return &ContactService{Repo: repo, Mailer: mailer}
}

// Create stores the contact, then sends the welcome email in a detached
// goroutine so the HTTP response never waits on the mail provider.
func (s *ContactService) Create(ctx context.Context, contact *models.Contact) error {
	if contact.CreatedAt.IsZero() {
		contact.CreatedAt = time.Now()
	}
	if err := s.Repo.Create(ctx, contact); err != nil {
		return err
	}

	if contact.Email != "" {
		email, name := contact.Email, contact.FullName()
		go func() {
			if err := s.Mailer.SendWelcomeEmail(email, name); err != nil {
				log.Printf("[mail] welcome email to %s failed: %v", email, err)
			}
		}()
	}
	return nil
}

func (s *ContactService) List(ctx context.Context) ([]models.Contact, error) {
	return s.Repo.FindAll(ctx)
}

func (s *ContactService) GetByID(ctx context.Context, id int64) (*models.Contact, error) {
	return s.Repo.FindByID(ctx, id)
}

func (s *ContactService) Update(ctx context.Context, id int64, patch models.ContactPatch) (*models.Contact, error) {
	return s.Repo.Patch(ctx, id, patch)
}

func (s *ContactService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.Repo.Delete(ctx, id)
}
