package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

type MissionRepo struct {
	pool *pgxpool.Pool
}

func NewMissionRepo(pool *pgxpool.Pool) *MissionRepo {
	return &MissionRepo{pool: pool}
}

func (r *MissionRepo) Create(ctx context.Context, m *models.Mission) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO missions (
			id, title, date, arrival_date, driver_id, vehicle_id, fleet_id, company_id,
			status, start_location, end_location, client, passengers, description, additional_details
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`, m.ID, m.Title, m.Date, m.ArrivalDate, m.DriverID, m.VehicleID, m.FleetID, m.CompanyID,
		m.Status, m.StartLocation, m.EndLocation, m.Client, m.Passengers, m.Description, m.AdditionalDetails)
	return row.Scan(&m.CreatedAt, &m.UpdatedAt)
}

func (r *MissionRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.Mission, error) {
	var m models.Mission
	err := r.pool.QueryRow(ctx, `
		SELECT id, title, date, arrival_date, driver_id, vehicle_id, fleet_id, company_id,
			status, start_location, end_location, client, passengers, description, additional_details,
			created_at, updated_at
		FROM missions WHERE id = $1
	`, id).Scan(&m.ID, &m.Title, &m.Date, &m.ArrivalDate, &m.DriverID, &m.VehicleID, &m.FleetID, &m.CompanyID,
		&m.Status, &m.StartLocation, &m.EndLocation, &m.Client, &m.Passengers, &m.Description, &m.AdditionalDetails,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// ListOverlappingDay returns every mission whose span (date to
// arrival_date, or date alone) touches the [dayStart, dayEnd) window.
// Cancelled missions are included; the availability service decides
// which missions actually block a resource.
func (r *MissionRepo) ListOverlappingDay(ctx context.Context, dayStart, dayEnd time.Time) ([]*models.Mission, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, title, date, arrival_date, driver_id, vehicle_id, fleet_id, company_id,
			status, start_location, end_location, client, passengers, description, additional_details,
			created_at, updated_at
		FROM missions
		WHERE date < $2 AND COALESCE(arrival_date, date) >= $1
	`, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*models.Mission
	for rows.Next() {
		var m models.Mission
		if err := rows.Scan(&m.ID, &m.Title, &m.Date, &m.ArrivalDate, &m.DriverID, &m.VehicleID, &m.FleetID, &m.CompanyID,
			&m.Status, &m.StartLocation, &m.EndLocation, &m.Client, &m.Passengers, &m.Description, &m.AdditionalDetails,
			&m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, err
		}
		list = append(list, &m)
	}
	return list, rows.Err()
}
