package services

import (
	"context"
	"time"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

const activityFeedLimit = 50

type ActivityService struct {
	Repo repositories.ActivityRepository
}

func NewActivityService(repo repositories.ActivityRepository) *ActivityService {
	return &ActivityService{Repo: repo}
}

func (s *ActivityService) Create(ctx context.Context, activity *models.Activity) error {
	if activity.CreatedAt.IsZero() {
		activity.CreatedAt = time.Now()
	}
	return s.Repo.Create(ctx, activity)
}

func (s *ActivityService) Recent(ctx context.Context) ([]models.Activity, error) {
	return s.Repo.FindRecent(ctx, activityFeedLimit)
}
