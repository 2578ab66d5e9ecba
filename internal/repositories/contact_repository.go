package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"solocrm/internal/models"
)

type ContactRepository interface {
	Create(ctx context.Context, contact *models.Contact) error
	FindByID(ctx context.Context, id int64) (*models.Contact, error)
	FindAll(ctx context.Context) ([]models.Contact, error)
	Patch(ctx context.Context, id int64, patch models.ContactPatch) (*models.Contact, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
	Search(ctx context.Context, term string, limit int) ([]models.Contact, error)

	// FindNameAndEmail selects only the fields the conversion chain needs.
	FindNameAndEmail(ctx context.Context, id int64) (*models.Contact, error)
}

type contactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) ContactRepository {
	return &contactRepository{db: db}
}

const contactColumns = `id, first_name, last_name, email, phone, company_id, created_at`

func (r *contactRepository) Create(ctx context.Context, contact *models.Contact) error {
	const query = `
		INSERT INTO contacts (first_name, last_name, email, phone, company_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		contact.FirstName, contact.LastName, contact.Email, contact.Phone,
		contact.CompanyID, contact.CreatedAt,
	).Scan(&contact.ID, &contact.CreatedAt)
}

func (r *contactRepository) FindByID(ctx context.Context, id int64) (*models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts WHERE id = $1`
	c := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CompanyID, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contactRepository) FindNameAndEmail(ctx context.Context, id int64) (*models.Contact, error) {
	const query = `SELECT id, first_name, last_name, email FROM contacts WHERE id = $1`
	c := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contactRepository) FindAll(ctx context.Context) ([]models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts ORDER BY created_at DESC`
	return r.queryContacts(ctx, query)
}

func (r *contactRepository) Patch(ctx context.Context, id int64, patch models.ContactPatch) (*models.Contact, error) {
	sets := []string{}
	args := []interface{}{}
	i := 1

	add := func(column string, value interface{}) {
		sets = append(sets, fmt.Sprintf("%s = $%d", column, i))
		args = append(args, value)
		i++
	}
	if patch.FirstName != nil {
		add("first_name", *patch.FirstName)
	}
	if patch.LastName != nil {
		add("last_name", *patch.LastName)
	}
	if patch.Email != nil {
		add("email", *patch.Email)
	}
	if patch.Phone != nil {
		add("phone", *patch.Phone)
	}
	if patch.CompanyID != nil {
		add("company_id", *patch.CompanyID)
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	query := "UPDATE contacts SET "
	for n, s := range sets {
		if n > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING ", i) + contactColumns
	args = append(args, id)

	c := &models.Contact{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CompanyID, &c.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *contactRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *contactRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&count)
	return count, err
}

func (r *contactRepository) Search(ctx context.Context, term string, limit int) ([]models.Contact, error) {
	query := `SELECT ` + contactColumns + ` FROM contacts
		WHERE first_name ILIKE $1 OR last_name ILIKE $1 OR email ILIKE $1
		LIMIT $2`
	return r.queryContacts(ctx, query, "%"+term+"%", limit)
}

func (r *contactRepository) queryContacts(ctx context.Context, query string, args ...interface{}) ([]models.Contact, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Contact
	for rows.Next() {
		var c models.Contact
		if err := rows.Scan(&c.ID, &c.FirstName, &c.LastName, &c.Email, &c.Phone, &c.CompanyID, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
