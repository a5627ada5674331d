package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

type VehicleRepo struct {
	pool *pgxpool.Pool
}

func NewVehicleRepo(pool *pgxpool.Pool) *VehicleRepo {
	return &VehicleRepo{pool: pool}
}

// VehicleFilter narrows candidate vehicles for availability queries.
// Zero values mean "no constraint".
type VehicleFilter struct {
	Type      string
	FleetID   *uuid.UUID
	Location  string
	CompanyID *uuid.UUID
}

// ListCandidates returns active vehicles matching the filter. Fleet
// membership goes through the fleet_vehicles association table.
func (r *VehicleRepo) ListCandidates(ctx context.Context, f VehicleFilter) ([]*models.Vehicle, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.registration, v.brand, v.model, v.type, v.capacity, v.location,
			v.company_id, v.status, v.created_at, v.updated_at
		FROM vehicles v
		WHERE v.status = 'actif'
			AND ($1 = '' OR v.type = $1)
			AND ($2 = '' OR v.location = $2)
			AND ($3::uuid IS NULL OR v.company_id = $3)
			AND ($4::uuid IS NULL OR EXISTS (
				SELECT 1 FROM fleet_vehicles fv WHERE fv.vehicle_id = v.id AND fv.fleet_id = $4
			))
		ORDER BY v.registration
	`, f.Type, f.Location, f.CompanyID, f.FleetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

// ListByFleet returns all vehicles associated with the fleet.
func (r *VehicleRepo) ListByFleet(ctx context.Context, fleetID uuid.UUID) ([]*models.Vehicle, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.registration, v.brand, v.model, v.type, v.capacity, v.location,
			v.company_id, v.status, v.created_at, v.updated_at
		FROM vehicles v
		JOIN fleet_vehicles fv ON fv.vehicle_id = v.id
		WHERE fv.fleet_id = $1
		ORDER BY v.registration
	`, fleetID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanVehicles(rows)
}

func scanVehicles(rows pgx.Rows) ([]*models.Vehicle, error) {
	var list []*models.Vehicle
	for rows.Next() {
		var v models.Vehicle
		if err := rows.Scan(&v.ID, &v.Registration, &v.Brand, &v.Model, &v.Type, &v.Capacity, &v.Location,
			&v.CompanyID, &v.Status, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &v)
	}
	if list == nil {
		list = []*models.Vehicle{}
	}
	return list, rows.Err()
}
