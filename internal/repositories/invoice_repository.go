package repositories

import (
	"context"
	"database/sql"

	"solocrm/internal/models"
)

type InvoiceRepository interface {
	Create(ctx context.Context, invoice *models.Invoice) error
	FindByID(ctx context.Context, id int64) (*models.Invoice, error)
	FindAllWithContacts(ctx context.Context) ([]models.Invoice, error)
	UpdateStatus(ctx context.Context, id int64, status models.InvoiceStatus) (*models.Invoice, error)
}

type invoiceRepository struct {
	db *sql.DB
}

func NewInvoiceRepository(db *sql.DB) InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *models.Invoice) error {
	const query = `
		INSERT INTO invoices (lead_id, contact_id, invoice_number, amount, status, due_date, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		invoice.LeadID, invoice.ContactID, invoice.InvoiceNumber,
		invoice.Amount, invoice.Status, invoice.DueDate, invoice.CreatedAt,
	).Scan(&invoice.ID, &invoice.CreatedAt)
}

func (r *invoiceRepository) FindByID(ctx context.Context, id int64) (*models.Invoice, error) {
	const query = `
		SELECT i.id, i.lead_id, i.contact_id, i.invoice_number, i.amount, i.status, i.due_date, i.created_at,
		       c.first_name, c.last_name, c.email, c.phone
		FROM invoices i
		LEFT JOIN contacts c ON c.id = i.contact_id
		WHERE i.id = $1
	`
	inv, err := scanInvoiceWithContact(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return inv, err
}

func (r *invoiceRepository) FindAllWithContacts(ctx context.Context) ([]models.Invoice, error) {
	const query = `
		SELECT i.id, i.lead_id, i.contact_id, i.invoice_number, i.amount, i.status, i.due_date, i.created_at,
		       c.first_name, c.last_name, c.email, c.phone
		FROM invoices i
		LEFT JOIN contacts c ON c.id = i.contact_id
		ORDER BY i.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Invoice
	for rows.Next() {
		inv, err := scanInvoiceWithContact(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *inv)
	}
	return out, rows.Err()
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id int64, status models.InvoiceStatus) (*models.Invoice, error) {
	const query = `
		UPDATE invoices SET status = $1 WHERE id = $2
		RETURNING id, lead_id, contact_id, invoice_number, amount, status, due_date, created_at
	`
	inv := &models.Invoice{}
	err := r.db.QueryRowContext(ctx, query, status, id).Scan(
		&inv.ID, &inv.LeadID, &inv.ContactID, &inv.InvoiceNumber,
		&inv.Amount, &inv.Status, &inv.DueDate, &inv.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return inv, nil
}

func scanInvoiceWithContact(row rowScanner) (*models.Invoice, error) {
	inv := &models.Invoice{}
	var first, last, email, phone sql.NullString
	if err := row.Scan(
		&inv.ID, &inv.LeadID, &inv.ContactID, &inv.InvoiceNumber,
		&inv.Amount, &inv.Status, &inv.DueDate, &inv.CreatedAt,
		&first, &last, &email, &phone,
	); err != nil {
		return nil, err
	}
	if first.Valid || last.Valid || email.Valid {
		inv.Contact = &models.ContactDetails{
			FirstName: first.String,
			LastName:  last.String,
			Email:     email.String,
			Phone:     phone.String,
		}
	}
	return inv, nil
}
