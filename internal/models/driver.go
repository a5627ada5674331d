package models

import (
	"time"

	"github.com/google/uuid"
)

// Driver status enums.
const (
	DriverStatusAvailable = "disponible"
	DriverStatusOnLeave   = "conge"
	DriverStatusInactive  = "inactif"
)

type Driver struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Email        string     `json:"email,omitempty"`
	Phone        string     `json:"phone,omitempty"`
	LicenseTypes []string   `json:"license_types"`
	Location     string     `json:"location,omitempty"`
	CompanyID    *uuid.UUID `json:"company_id,omitempty"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
