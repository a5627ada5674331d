package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

type FleetRepo struct {
	pool *pgxpool.Pool
}

func NewFleetRepo(pool *pgxpool.Pool) *FleetRepo {
	return &FleetRepo{pool: pool}
}

func (r *FleetRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Fleet, error) {
	var f models.Fleet
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, company_id, created_at, updated_at FROM fleets WHERE id = $1
	`, id).Scan(&f.ID, &f.Name, &f.CompanyID, &f.CreatedAt, &f.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// AddVehicle associates a vehicle with the fleet. The association table
// carries a unique (fleet_id, vehicle_id) constraint and the insert is
// ON CONFLICT DO NOTHING, so concurrent identical requests cannot
// double-insert. Returns true when a new association was created.
func (r *FleetRepo) AddVehicle(ctx context.Context, fleetID, vehicleID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO fleet_vehicles (fleet_id, vehicle_id) VALUES ($1, $2)
		ON CONFLICT (fleet_id, vehicle_id) DO NOTHING
	`, fleetID, vehicleID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// AddDriver associates a driver with the fleet, insert-or-ignore like
// AddVehicle.
func (r *FleetRepo) AddDriver(ctx context.Context, fleetID, driverID uuid.UUID) (bool, error) {
	tag, err := r.pool.Exec(ctx, `
		INSERT INTO fleet_drivers (fleet_id, driver_id) VALUES ($1, $2)
		ON CONFLICT (fleet_id, driver_id) DO NOTHING
	`, fleetID, driverID)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
