package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"log"

	"solocrm/internal/models"
)

type LeadRepository interface {
	Create(ctx context.Context, lead *models.Lead) error
	FindByID(ctx context.Context, id int64) (*models.Lead, error)
	FindAllWithContacts(ctx context.Context) ([]models.Lead, error)
	FindAll(ctx context.Context) ([]models.Lead, error)
	Patch(ctx context.Context, id int64, patch models.LeadPatch) (*models.Lead, error)
	Delete(ctx context.Context, id int64) (bool, error)
	SearchByTitle(ctx context.Context, term string, limit int) ([]models.Lead, error)
}

type leadRepository struct {
	db *sql.DB
}

func NewLeadRepository(db *sql.DB) LeadRepository {
	if db == nil {
		log.Fatalf("received nil database connection")
	}
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *models.Lead) error {
	const query = `
		INSERT INTO leads (title, amount, status, contact_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		lead.Title, lead.Amount, lead.Status, lead.ContactID, lead.CreatedAt,
	).Scan(&lead.ID, &lead.CreatedAt)
}

func (r *leadRepository) FindByID(ctx context.Context, id int64) (*models.Lead, error) {
	const query = `
		SELECT l.id, l.title, l.amount, l.status, l.contact_id, l.created_at,
		       c.first_name, c.last_name
		FROM leads l
		LEFT JOIN contacts c ON c.id = l.contact_id
		WHERE l.id = $1
	`
	lead, err := scanLeadWithContact(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return lead, err
}

func (r *leadRepository) FindAllWithContacts(ctx context.Context) ([]models.Lead, error) {
	const query = `
		SELECT l.id, l.title, l.amount, l.status, l.contact_id, l.created_at,
		       c.first_name, c.last_name
		FROM leads l
		LEFT JOIN contacts c ON c.id = l.contact_id
		ORDER BY l.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Lead
	for rows.Next() {
		lead, err := scanLeadWithContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *lead)
	}
	return out, rows.Err()
}

// FindAll returns bare rows without the contact join; the stats aggregator
// only needs status, amount and created_at.
func (r *leadRepository) FindAll(ctx context.Context) ([]models.Lead, error) {
	const query = `SELECT id, title, amount, status, contact_id, created_at FROM leads`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Title, &l.Amount, &l.Status, &l.ContactID, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

// Patch applies only the non-nil fields and returns the updated row, or
// nil when no row matched.
func (r *leadRepository) Patch(ctx context.Context, id int64, patch models.LeadPatch) (*models.Lead, error) {
	sets := []string{}
	args := []interface{}{}
	i := 1

	if patch.Title != nil {
		sets = append(sets, fmt.Sprintf("title = $%d", i))
		args = append(args, *patch.Title)
		i++
	}
	if patch.Amount != nil {
		sets = append(sets, fmt.Sprintf("amount = $%d", i))
		args = append(args, *patch.Amount)
		i++
	}
	if patch.Status != nil {
		sets = append(sets, fmt.Sprintf("status = $%d", i))
		args = append(args, *patch.Status)
		i++
	}
	if patch.ContactID != nil {
		sets = append(sets, fmt.Sprintf("contact_id = $%d", i))
		args = append(args, *patch.ContactID)
		i++
	}
	if len(sets) == 0 {
		return r.findPlain(ctx, id)
	}

	query := "UPDATE leads SET "
	for n, s := range sets {
		if n > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING id, title, amount, status, contact_id, created_at", i)
	args = append(args, id)

	lead := &models.Lead{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&lead.ID, &lead.Title, &lead.Amount, &lead.Status, &lead.ContactID, &lead.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *leadRepository) findPlain(ctx context.Context, id int64) (*models.Lead, error) {
	const query = `SELECT id, title, amount, status, contact_id, created_at FROM leads WHERE id = $1`
	lead := &models.Lead{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&lead.ID, &lead.Title, &lead.Amount, &lead.Status, &lead.ContactID, &lead.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *leadRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *leadRepository) SearchByTitle(ctx context.Context, term string, limit int) ([]models.Lead, error) {
	const query = `
		SELECT id, title, amount, status, contact_id, created_at
		FROM leads
		WHERE title ILIKE $1
		LIMIT $2
	`
	rows, err := r.db.QueryContext(ctx, query, "%"+term+"%", limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Lead
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Title, &l.Amount, &l.Status, &l.ContactID, &l.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanLeadWithContact(row rowScanner) (*models.Lead, error) {
	lead := &models.Lead{}
	var first, last sql.NullString
	if err := row.Scan(
		&lead.ID, &lead.Title, &lead.Amount, &lead.Status, &lead.ContactID, &lead.CreatedAt,
		&first, &last,
	); err != nil {
		return nil, err
	}
	if first.Valid || last.Valid {
		lead.Contact = &models.ContactName{FirstName: first.String, LastName: last.String}
	}
	return lead, nil
}
