package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"solocrm/internal/models"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *models.Company) error
	FindByID(ctx context.Context, id int64) (*models.Company, error)
	FindAll(ctx context.Context) ([]models.Company, error)
	Patch(ctx context.Context, id int64, patch models.CompanyPatch) (*models.Company, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int, error)
	SearchByName(ctx context.Context, term string, limit int) ([]models.Company, error)
}

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, company *models.Company) error {
	const query = `
		INSERT INTO companies (name, industry, website, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		company.Name, company.Industry, company.Website, company.CreatedAt,
	).Scan(&company.ID, &company.CreatedAt)
}

func (r *companyRepository) FindByID(ctx context.Context, id int64) (*models.Company, error) {
	const query = `SELECT id, name, industry, website, created_at FROM companies WHERE id = $1`
	c := &models.Company{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Industry, &c.Website, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *companyRepository) FindAll(ctx context.Context) ([]models.Company, error) {
	const query = `SELECT id, name, industry, website, created_at FROM companies ORDER BY created_at DESC`
	return r.queryCompanies(ctx, query)
}

func (r *companyRepository) Patch(ctx context.Context, id int64, patch models.CompanyPatch) (*models.Company, error) {
	sets := []string{}
	args := []interface{}{}
	i := 1

	if patch.Name != nil {
		sets = append(sets, fmt.Sprintf("name = $%d", i))
		args = append(args, *patch.Name)
		i++
	}
	if patch.Industry != nil {
		sets = append(sets, fmt.Sprintf("industry = $%d", i))
		args = append(args, *patch.Industry)
		i++
	}
	if patch.Website != nil {
		sets = append(sets, fmt.Sprintf("website = $%d", i))
		args = append(args, *patch.Website)
		i++
	}
	if len(sets) == 0 {
		return r.FindByID(ctx, id)
	}

	query := "UPDATE companies SET "
	for n, s := range sets {
		if n > 0 {
			query += ", "
		}
		query += s
	}
	query += fmt.Sprintf(" WHERE id = $%d RETURNING id, name, industry, website, created_at", i)
	args = append(args, id)

	c := &models.Company{}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&c.ID, &c.Name, &c.Industry, &c.Website, &c.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *companyRepository) Delete(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM companies WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *companyRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM companies`).Scan(&count)
	return count, err
}

func (r *companyRepository) SearchByName(ctx context.Context, term string, limit int) ([]models.Company, error) {
	const query = `
		SELECT id, name, industry, website, created_at
		FROM companies
		WHERE name ILIKE $1
		LIMIT $2
	`
	return r.queryCompanies(ctx, query, "%"+term+"%", limit)
}

func (r *companyRepository) queryCompanies(ctx context.Context, query string, args ...interface{}) ([]models.Company, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Company
	for rows.Next() {
		var c models.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Industry, &c.Website, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
