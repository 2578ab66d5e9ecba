package services

import (
	"context"
	"fmt"
	"log"
	"math/rand"
	"strconv"
	"time"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

// ConversionService runs the automation chain fired when a lead reaches
// "converti": follow-up task, invoice, activity log, then a best-effort
// email to the lead's contact.
//
// The chain is deliberately non-transactional and non-idempotent: each step
// commits on its own, a failed step is logged and the next one still runs,
// and re-converting the same lead runs everything again. Callers never see
// a chain failure.
type ConversionService struct {
	TaskRepo     repositories.TaskRepository
	InvoiceRepo  repositories.InvoiceRepository
	ActivityRepo repositories.ActivityRepository
	ContactRepo  repositories.ContactRepository
	Mailer       Mailer
	Notifier     Notifier
}

func NewConversionService(
	taskRepo repositories.TaskRepository,
	invoiceRepo repositories.InvoiceRepository,
	activityRepo repositories.ActivityRepository,
	contactRepo repositories.ContactRepository,
	mailer Mailer,
	notifier Notifier,
) *ConversionService {
	return &ConversionService{
		TaskRepo:     taskRepo,
		InvoiceRepo:  invoiceRepo,
		ActivityRepo: activityRepo,
		ContactRepo:  contactRepo,
		Mailer:       mailer,
		Notifier:     notifier,
	}
}

const (
	followUpDelay = 48 * time.Hour
	invoiceTerm   = 30 * 24 * time.Hour
)

// NewInvoiceNumber builds "INV-<year>-<nnnn>" with nnnn in [1000, 9999].
// Collisions are not checked; the volume makes them unlikely and an insert
// failure is swallowed like any other chain sub-step failure.
func NewInvoiceNumber(now time.Time) string {
	return fmt.Sprintf("INV-%d-%d", now.Year(), 1000+rand.Intn(9000))
}

func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}

// Run executes the chain for an updated lead. Steps run strictly in order;
// steps 5–6 are skipped when the contact or its email cannot be resolved.
func (s *ConversionService) Run(ctx context.Context, lead *models.Lead) {
	now := time.Now()

	// 1. Follow-up task, due in 2 days.
	due := now.Add(followUpDelay)
	task := &models.Task{
		Title:       fmt.Sprintf("Suivi client : %s", lead.Title),
		Description: "Relancer le client après la conversion de l'opportunité.",
		Status:      models.TaskStatusOpen,
		DueDate:     &due,
		ContactID:   lead.ContactID,
		CreatedAt:   now,
	}
	if err := s.TaskRepo.Store(ctx, task); err != nil {
		log.Printf("[convert] lead %d: follow-up task insert failed: %v", lead.ID, err)
	}

	// 2. Invoice, due in 30 days.
	invoice := &models.Invoice{
		LeadID:        lead.ID,
		ContactID:     lead.ContactID,
		InvoiceNumber: NewInvoiceNumber(now),
		Amount:        lead.Amount,
		Status:        models.InvoiceStatusPending,
		DueDate:       now.Add(invoiceTerm),
		CreatedAt:     now,
	}
	if err := s.InvoiceRepo.Create(ctx, invoice); err != nil {
		log.Printf("[convert] lead %d: invoice insert failed: %v", lead.ID, err)
	}

	// 3. Conversion audit entry.
	s.logActivity(ctx, models.ActivityLeadConverted,
		fmt.Sprintf("Lead « %s » converti (montant : %s €)", lead.Title, formatAmount(lead.Amount)))

	// 4. Resolve the contact; without an email there is nobody to write to.
	if lead.ContactID == nil {
		return
	}
	contact, err := s.ContactRepo.FindNameAndEmail(ctx, *lead.ContactID)
	if err != nil {
		log.Printf("[convert] lead %d: contact lookup failed: %v", lead.ID, err)
		return
	}
	if contact == nil || contact.Email == "" {
		return
	}

	// 5. Conversion email. Delivery failure is logged, not propagated.
	if err := s.Mailer.SendConversionEmail(contact.Email, contact.FullName(), lead.Title); err != nil {
		log.Printf("[convert] lead %d: conversion email to %s failed: %v", lead.ID, contact.Email, err)
	}

	// 6. Email audit entry — written even when delivery failed, matching
	// the historical behavior of this chain.
	s.logActivity(ctx, models.ActivityEmailSent,
		fmt.Sprintf("Email de conversion envoyé à %s", contact.Email))

	// 7. Operator ping, optional.
	if s.Notifier != nil {
		if err := s.Notifier.Notify(fmt.Sprintf(
			"💰 Lead converti : <b>%s</b> (%s €)", lead.Title, formatAmount(lead.Amount))); err != nil {
			log.Printf("[convert] lead %d: telegram notify failed: %v", lead.ID, err)
		}
	}
}

func (s *ConversionService) logActivity(ctx context.Context, kind, description string) {
	activity := &models.Activity{Type: kind, Description: description, CreatedAt: time.Now()}
	if err := s.ActivityRepo.Create(ctx, activity); err != nil {
		log.Printf("[convert] activity %q insert failed: %v", kind, err)
	}
}
