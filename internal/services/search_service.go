package services

import (
	"context"
	"log"
	"strings"

	"golang.org/x/sync/errgroup"

	"solocrm/internal/repositories"
)

const (
	searchMinChars    = 2
	searchCategoryCap = 5
)

type ContactHit struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

type CompanyHit struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type LeadHit struct {
	ID     int64   `json:"id"`
	Title  string  `json:"title"`
	Amount float64 `json:"amount"`
}

// SearchResults always carries all three categories, empty slices included,
// so the JSON shape is stable.
type SearchResults struct {
	Contacts  []ContactHit `json:"contacts"`
	Companies []CompanyHit `json:"companies"`
	Leads     []LeadHit    `json:"leads"`
}

type SearchService struct {
	ContactRepo repositories.ContactRepository
	CompanyRepo repositories.CompanyRepository
	LeadRepo    repositories.LeadRepository
}

func NewSearchService(
	contactRepo repositories.ContactRepository,
	companyRepo repositories.CompanyRepository,
	leadRepo repositories.LeadRepository,
) *SearchService {
	return &SearchService{ContactRepo: contactRepo, CompanyRepo: companyRepo, LeadRepo: leadRepo}
}

// GlobalSearch runs the three category queries concurrently. Queries under
// two characters short-circuit without touching the store. A failed
// category degrades to an empty list instead of failing the whole search.
func (s *SearchService) GlobalSearch(ctx context.Context, query string) SearchResults {
	results := SearchResults{
		Contacts:  []ContactHit{},
		Companies: []CompanyHit{},
		Leads:     []LeadHit{},
	}

	query = strings.TrimSpace(query)
	if len([]rune(query)) < searchMinChars {
		return results
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		contacts, err := s.ContactRepo.Search(gctx, query, searchCategoryCap)
		if err != nil {
			log.Printf("[search] contacts query failed: %v", err)
			return nil
		}
		for _, c := range contacts {
			results.Contacts = append(results.Contacts, ContactHit{
				ID: c.ID, FirstName: c.FirstName, LastName: c.LastName, Email: c.Email,
			})
		}
		return nil
	})

	g.Go(func() error {
		companies, err := s.CompanyRepo.SearchByName(gctx, query, searchCategoryCap)
		if err != nil {
			log.Printf("[search] companies query failed: %v", err)
			return nil
		}
		for _, c := range companies {
			results.Companies = append(results.Companies, CompanyHit{ID: c.ID, Name: c.Name})
		}
		return nil
	})

	g.Go(func() error {
		leads, err := s.LeadRepo.SearchByTitle(gctx, query, searchCategoryCap)
		if err != nil {
			log.Printf("[search] leads query failed: %v", err)
			return nil
		}
		for _, l := range leads {
			results.Leads = append(results.Leads, LeadHit{ID: l.ID, Title: l.Title, Amount: l.Amount})
		}
		return nil
	})

	// Workers never return errors; Wait only synchronizes the fan-out.
	_ = g.Wait()
	return results
}
