package services

import (
	"context"
	"time"

	"solocrm/internal/models"
	"solocrm/internal/repositories"
)

type TaskService struct {
	Repo repositories.TaskRepository
}

func NewTaskService(repo repositories.TaskRepository) *TaskService {
	return &TaskService{Repo: repo}
}

func (s *TaskService) Create(ctx context.Context, task *models.Task) error {
	if task.Status == "" {
		task.Status = models.TaskStatusOpen
	}
	if task.CreatedAt.IsZero() {
		task.CreatedAt = time.Now()
	}
	return s.Repo.Store(ctx, task)
}

func (s *TaskService) List(ctx context.Context) ([]models.Task, error) {
	return s.Repo.FindAllWithContacts(ctx)
}

func (s *TaskService) Update(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	return s.Repo.Patch(ctx, id, patch)
}

func (s *TaskService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.Repo.Delete(ctx, id)
}
