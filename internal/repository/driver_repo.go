package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

type DriverRepo struct {
	pool *pgxpool.Pool
}

func NewDriverRepo(pool *pgxpool.Pool) *DriverRepo {
	return &DriverRepo{pool: pool}
}

// DriverFilter narrows candidate drivers for availability queries.
// Zero values mean "no constraint".
type DriverFilter struct {
	FleetID   *uuid.UUID
	Location  string
	CompanyID *uuid.UUID
}

// ListCandidates returns available drivers matching the filter.
func (r *DriverRepo) ListCandidates(ctx context.Context, f DriverFilter) ([]*models.Driver, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.first_name, d.last_name, d.email, d.phone, d.license_types, d.location,
			d.company_id, d.status, d.created_at, d.updated_at
		FROM drivers d
		WHERE d.status = 'disponible'
			AND ($1 = '' OR d.location = $1)
			AND ($2::uuid IS NULL OR d.company_id = $2)
			AND ($3::uuid IS NULL OR EXISTS (
				SELECT 1 FROM fleet_drivers fd WHERE fd.driver_id = d.id AND fd.fleet_id = $3
			))
		ORDER BY d.last_name, d.first_name
	`, f.Location, f.CompanyID, f.FleetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDrivers(rows)
}

// ListByFleet returns all drivers associated with the fleet.
func (r *DriverRepo) ListByFleet(ctx context.Context, fleetID uuid.UUID) ([]*models.Driver, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT d.id, d.first_name, d.last_name, d.email, d.phone, d.license_types, d.location,
			d.company_id, d.status, d.created_at, d.updated_at
		FROM drivers d
		JOIN fleet_drivers fd ON fd.driver_id = d.id
		WHERE fd.fleet_id = $1
		ORDER BY d.last_name, d.first_name
	`, fleetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanDrivers(rows)
}

func scanDrivers(rows pgx.Rows) ([]*models.Driver, error) {
	var list []*models.Driver
	for rows.Next() {
		var d models.Driver
		if err := rows.Scan(&d.ID, &d.FirstName, &d.LastName, &d.Email, &d.Phone, &d.LicenseTypes, &d.Location,
			&d.CompanyID, &d.Status, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &d)
	}
	if list == nil {
		list = []*models.Driver{}
	}
	return list, rows.Err()
}
