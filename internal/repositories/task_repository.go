package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"solocrm/internal/models"
)

type TaskRepository interface {
	Store(ctx context.Context, task *models.Task) error
	FindAllWithContacts(ctx context.Context) ([]models.Task, error)
	FindByID(ctx context.Context, id int64) (*models.Task, error)
	Patch(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error)
	Delete(ctx context.Context, id int64) (bool, error)

	// UpcomingOpen returns the nearest-due open tasks for the dashboard.
	UpcomingOpen(ctx context.Context, limit int) ([]models.Task, error)
}

type taskRepository struct {
	db *sql.DB
}

func NewTaskRepository(db *sql.DB) TaskRepository {
	return &taskRepository{db: db}
}

func (r *taskRepository) Store(ctx context.Context, task *models.Task) error {
	const query = `
		INSERT INTO tasks (title, description, status, due_date, contact_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		task.Title, task.Description, task.Status, task.DueDate, task.ContactID, task.CreatedAt,
	).Scan(&task.ID, &task.CreatedAt)
}

func (r *taskRepository) FindAllWithContacts(ctx context.Context) ([]models.Task, error) {
	const query = `
		SELECT t.id, t.title, t.description, t.status, t.due_date, t.contact_id, t.created_at,
		       c.first_name, c.last_name
		FROM tasks t
		LEFT JOIN contacts c ON c.id = t.contact_id
		ORDER BY t.due_date ASC NULLS LAST
	`
	return r.queryJoined(ctx, query)
}

func (r *taskRepository) FindByID(ctx context.Context, id int64) (*models.Task, error) {
	const query = `
		SELECT id, title, description, status, due_date, contact_id, created_at
		FROM tasks WHERE id = $1
	`
	t := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.ContactID, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) Patch(ctx context.Context, id int64, patch models.TaskPatch) (*models.Task, error) {
	sets := []string{}
	args := []interface{}{}
	i := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, value)
		i++
	}
	if patch.Title != nil {
		add("title", *patch.Title)
	}
	if patch.Description != nil {
		add("description", *patch.Description)
	}
	if patch.Status != nil {
		add("status", *patch.Status)
	}
	if patch.DueDate != nil {
		add("due_date", *patch.DueDate)
	}
	if patch.ContactID != nil {
		add("contact_id", *patch.ContactID)
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	query := "UPDATE tasks SET "
	for n, s := range sets {
		if n > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING id, title, description, status, due_date, contact_id, created_at", i)
	args = append(args, id)

	t := &models.Task{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.ContactID, &t.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return t, nil
}

func (r *taskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *taskRepository) UpcomingOpen(ctx context.Context, limit int) ([]models.Task, error) {
	const query = `
		SELECT t.id, t.title, t.description, t.status, t.due_date, t.contact_id, t.created_at,
		       c.first_name, c.last_name
		FROM tasks t
		LEFT JOIN contacts c ON c.id = t.contact_id
		WHERE t.status = $1
		ORDER BY t.due_date ASC NULLS LAST
		LIMIT $2
	`
	return r.queryJoined(ctx, query, models.TaskStatusOpen, limit)
}

func (r *taskRepository) queryJoined(ctx context.Context, query string, args ...interface{}) ([]models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Task
	for rows.Next() {
		var t models.Task
		var first, last sql.NullString
		if err := rows.Scan(
			&t.ID, &t.Title, &t.Description, &t.Status, &t.DueDate, &t.ContactID, &t.CreatedAt,
			&first, &last,
		); err != nil {
			return nil, err
		}
		if first.Valid || last.Valid {
			t.Contact = &models.ContactName{FirstName: first.String, LastName: last.String}
		}
		out = append(out, t)
	}
	return out, rows.Err()
}
