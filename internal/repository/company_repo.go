package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

type CompanyRepo struct {
	pool *pgxpool.Pool
}

func NewCompanyRepo(pool *pgxpool.Pool) *CompanyRepo {
	return &CompanyRepo{pool: pool}
}

func (r *CompanyRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Company, error) {
	var c models.Company
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, email, phone, address, webhook_url, created_at, updated_at
		FROM companies WHERE id = $1
	`, id).Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.Address, &c.WebhookURL, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// ListFleets returns the company's fleets.
func (r *CompanyRepo) ListFleets(ctx context.Context, companyID uuid.UUID) ([]*models.Fleet, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, company_id, created_at, updated_at
		FROM fleets WHERE company_id = $1 ORDER BY name
	`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*models.Fleet
	for rows.Next() {
		var f models.Fleet
		if err := rows.Scan(&f.ID, &f.Name, &f.CompanyID, &f.CreatedAt, &f.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &f)
	}
	if list == nil {
		list = []*models.Fleet{}
	}
	return list, rows.Err()
}
