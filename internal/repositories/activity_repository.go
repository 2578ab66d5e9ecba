package repositories

import (
	"context"
	"database/sql"

	"solocrm/internal/models"
)

type ActivityRepository interface {
	Create(ctx context.Context, activity *models.Activity) error
	FindRecent(ctx context.Context, limit int) ([]models.Activity, error)
}

type activityRepository struct {
	db *sql.DB
}

func NewActivityRepository(db *sql.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) Create(ctx context.Context, activity *models.Activity) error {
	const query = `
		INSERT INTO activities (type, description, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, activity.Type, activity.Description, activity.CreatedAt).
		Scan(&activity.ID, &activity.CreatedAt)
}

func (r *activityRepository) FindRecent(ctx context.Context, limit int) ([]models.Activity, error) {
	const query = `
		SELECT id, type, description, created_at
		FROM activities
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Activity
	for rows.Next() {
		var a models.Activity
		if err := rows.Scan(&a.ID, &a.Type, &a.Description, &a.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
