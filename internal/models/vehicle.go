package models

import (
	"time"

	"github.com/google/uuid"
)

// Vehicle status enums.
const (
	VehicleStatusActive      = "actif"
	VehicleStatusMaintenance = "maintenance"
	VehicleStatusRetired     = "retire"
)

type Vehicle struct {
	ID           uuid.UUID  `json:"id"`
	Registration string     `json:"registration"`
	Brand        string     `json:"brand"`
	Model        string     `json:"model"`
	Type         string     `json:"type"`
	Capacity     *int       `json:"capacity,omitempty"`
	Location     string     `json:"location,omitempty"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
