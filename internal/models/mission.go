package models

import (
	"time"

	"github.com/google/uuid"
)

// Mission status enums. Statuses come from the dashboard UI; "annulee"
// (cancelled) is the only status that frees a mission's resources for
// availability queries.
const (
	MissionStatusPending    = "en_attente"
	MissionStatusConfirmed  = "confirmee"
	MissionStatusInProgress = "en_cours"
	MissionStatusCompleted  = "terminee"
	MissionStatusCancelled  = "annulee"
)

// Mission is a scheduled transport job linking a driver, a vehicle and
// an optional company/fleet.
type Mission struct {
	ID                uuid.UUID  `json:"id"`
	Title             string     `json:"title"`
	Date              time.Time  `json:"date"`
	ArrivalDate       *time.Time `json:"arrival_date,omitempty"`
	DriverID          *uuid.UUID `json:"driver_id,omitempty"`
	VehicleID         *uuid.UUID `json:"vehicle_id,omitempty"`
	FleetID           *uuid.UUID `json:"fleet_id,omitempty"`
	CompanyID         *uuid.UUID `json:"company_id,omitempty"`
	Status            string     `json:"status"`
	StartLocation     string     `json:"start_location,omitempty"`
	EndLocation       string     `json:"end_location,omitempty"`
	Client            string     `json:"client,omitempty"`
	Passengers        *int       `json:"passengers,omitempty"`
	Description       string     `json:"description,omitempty"`
	AdditionalDetails string     `json:"additional_details,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// Blocks reports whether the mission makes its assigned resources
// unavailable on the given day. Cancelled missions never block. A
// mission spans from its date to its arrival date when one is set.
func (m *Mission) Blocks(dayStart, dayEnd time.Time) bool {
	if m.Status == MissionStatusCancelled {
		return false
	}
	end := m.Date
	if m.ArrivalDate != nil && m.ArrivalDate.After(end) {
		end = *m.ArrivalDate
	}
	return m.Date.Before(dayEnd) && !end.Before(dayStart)
}
