package services

import (
	"context"
	"errors"
	"log"
	"strconv"
	"time"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

// ErrStatsUnavailable is the generic failure surfaced to callers whenever
// any underlying fetch of the dashboard aggregation fails.
var ErrStatsUnavailable = errors.New("could not load statistics")

const trendMonths = 6

type StatusDistribution struct {
	Nouveau  int `json:"nouveau"`
	EnCours  int `json:"en_cours"`
	Converti int `json:"converti"`
	Perdu    int `json:"perdu"`
}

type TrendPoint struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

// Summary is the dashboard payload of GET /stats.
type Summary struct {
	TotalLeads         int                `json:"totalLeads"`
	TotalRevenue       float64            `json:"totalRevenue"`
	ConversionRate     string             `json:"conversionRate"`
	StatusDistribution StatusDistribution `json:"statusDistribution"`
	RevenueTrend       []TrendPoint       `json:"revenueTrend"`
	TotalContacts      int                `json:"totalContacts"`
	TotalCompanies     int                `json:"totalCompanies"`
	UpcomingTasks      []models.Task      `json:"upcomingTasks"`
}

type StatsService struct {
	LeadRepo    repositories.LeadRepository
	ContactRepo repositories.ContactRepository
	CompanyRepo repositories.CompanyRepository
	TaskRepo    repositories.TaskRepository

	// now is swappable so the trailing-month window is testable.
	now func() time.Time
}

func NewStatsService(
	leadRepo repositories.LeadRepository,
	contactRepo repositories.ContactRepository,
	companyRepo repositories.CompanyRepository,
	taskRepo repositories.TaskRepository,
) *StatsService {
	return &StatsService{
		LeadRepo:    leadRepo,
		ContactRepo: contactRepo,
		CompanyRepo: companyRepo,
		TaskRepo:    taskRepo,
		now:         time.Now,
	}
}

func (s *StatsService) GetSummary(ctx context.Context) (*Summary, error) {
	leads, err := s.LeadRepo.FindAll(ctx)
	if err != nil {
		log.Printf("[stats] leads fetch failed: %v", err)
		return nil, ErrStatsUnavailable
	}
	totalContacts, err := s.ContactRepo.Count(ctx)
	if err != nil {
		log.Printf("[stats] contact count failed: %v", err)
		return nil, ErrStatsUnavailable
	}
	totalCompanies, err := s.CompanyRepo.Count(ctx)
	if err != nil {
		log.Printf("[stats] company count failed: %v", err)
		return nil, ErrStatsUnavailable
	}
	upcoming, err := s.TaskRepo.UpcomingOpen(ctx, 5)
	if err != nil {
		log.Printf("[stats] upcoming tasks fetch failed: %v", err)
		return nil, ErrStatsUnavailable
	}
	if upcoming == nil {
		upcoming = []models.Task{}
	}

	summary := &Summary{
		TotalLeads:     len(leads),
		RevenueTrend:   s.revenueTrend(leads),
		TotalContacts:  totalContacts,
		TotalCompanies: totalCompanies,
		UpcomingTasks:  upcoming,
	}

	for _, lead := range leads {
		switch lead.Status {
		case models.LeadStatusNew:
			summary.StatusDistribution.Nouveau++
		case models.LeadStatusInProgress:
			summary.StatusDistribution.EnCours++
		case models.LeadStatusConverted:
			summary.StatusDistribution.Converti++
			summary.TotalRevenue += lead.Amount
		case models.LeadStatusLost:
			summary.StatusDistribution.Perdu++
		}
	}

	if summary.TotalLeads == 0 {
		summary.ConversionRate = "0"
	} else {
		rate := float64(summary.StatusDistribution.Converti) / float64(summary.TotalLeads) * 100
		summary.ConversionRate = strconv.FormatFloat(rate, 'f', 1, 64)
	}
	return summary, nil
}

// revenueTrend buckets converted-lead amounts into the trailing six calendar
// months including the current one, oldest first.
func (s *StatsService) revenueTrend(leads []models.Lead) []TrendPoint {
	now := s.now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	trend := make([]TrendPoint, 0, trendMonths)
	for i := trendMonths - 1; i >= 0; i-- {
		month := first.AddDate(0, -i, 0)
		point := TrendPoint{Month: month.Format("Jan")}
		for _, lead := range leads {
			if lead.Status != models.LeadStatusConverted {
				continue
			}
			if lead.CreatedAt.Year() == month.Year() && lead.CreatedAt.Month() == month.Month() {
				point.Total += lead.Amount
			}
		}
		trend = append(trend, point)
	}
	return trend
}
