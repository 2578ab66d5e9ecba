package services

import (
	"bytes"
	"context"
	"encoding/csv"
	"time"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

type LeadService struct {
	Repo       repositories.LeadRepository
	Conversion *ConversionService
}

func NewLeadService(repo repositories.LeadRepository, conversion *ConversionService) *LeadService {
	return &LeadService{Repo: repo, Conversion: conversion}
}

func (s *LeadService) Create(ctx context.Context, lead *models.Lead) error {
	if lead.Status == "" {
		lead.Status = models.LeadStatusNew
	}
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	return s.Repo.Create(ctx, lead)
}

func (s *LeadService) List(ctx context.Context) ([]models.Lead, error) {
	return s.Repo.FindAllWithContacts(ctx)
}

func (s *LeadService) GetByID(ctx context.Context, id int64) (*models.Lead, error) {
	return s.Repo.FindByID(ctx, id)
}

// Update applies a partial update and, when the patch itself sets the
// status to "converti" and a row was actually updated, fires the
// automation chain with the updated row. The returned lead (and any error)
// reflects only the update; the chain's outcome is invisible to callers.
// Note the trigger looks at the patch, not at a transition: re-sending
// "converti" for an already-converted lead re-runs the whole chain.
func (s *LeadService) Update(ctx context.Context, id int64, patch models.LeadPatch) (*models.Lead, error) {
	updated, err := s.Repo.Patch(ctx, id, patch)
	if err != nil || updated == nil {
		return updated, err
	}
	if patch.Status != nil && *patch.Status == models.LeadStatusConverted {
		s.Conversion.Run(ctx, updated)
	}
	return updated, nil
}

func (s *LeadService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.Repo.Delete(ctx, id)
}

// ExportCSV renders all leads as a semicolon-delimited CSV: title, amount,
// status, creation date, contact full name.
func (s *LeadService) ExportCSV(ctx context.Context) ([]byte, error) {
	leads, err := s.Repo.FindAllWithContacts(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	if err := w.Write([]string{"Titre", "Montant", "Statut", "Date", "Contact"}); err != nil {
		return nil, err
	}
	for _, lead := range leads {
		contact := ""
		if lead.Contact != nil {
			contact = lead.Contact.FirstName + " " + lead.Contact.LastName
		}
		record := []string{
			lead.Title,
			formatAmount(lead.Amount),
			string(lead.Status),
			lead.CreatedAt.Format("02/01/2006"),
			contact,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
