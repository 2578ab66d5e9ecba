package repositories

import (
	"context"
	"database/sql"

	"solocrm/internal/models"
)

type LeadNoteRepository interface {
	Create(ctx context.Context, note *models.LeadNote) error
	FindByLead(ctx context.Context, leadID int64) ([]models.LeadNote, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

type leadNoteRepository struct {
	db *sql.DB
}

func NewLeadNoteRepository(db *sql.DB) LeadNoteRepository {
	return &leadNoteRepository{db: db}
}

func (r *leadNoteRepository) Create(ctx context.Context, note *models.LeadNote) error {
	const query = `
		INSERT INTO lead_notes (lead_id, content, created_at)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query, note.LeadID, note.Content, note.CreatedAt).
		Scan(&note.ID, &note.CreatedAt)
}

func (r *leadNoteRepository) FindByLead(ctx context.Context, leadID int64) ([]models.LeadNote, error) {
	const query = `
		SELECT id, lead_id, content, created_at
		FROM lead_notes
		WHERE lead_id = $1
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, leadID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.LeadNote
	for rows.Next() {
		var n models.LeadNote
		if err := rows.Scan(&n.ID, &n.LeadID, &n.Content, &n.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

func (r *leadNoteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM lead_notes WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
