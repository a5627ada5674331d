package models

import (
	"time"

	"github.com/google/uuid"
)

// Company is a client organisation. WebhookURL, when set, receives a
// POST for every mission created on the company's behalf.
type Company struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	WebhookURL string    `json:"webhook_url,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// Fleet is a named grouping of drivers and vehicles, optionally owned
// by a company. Membership lives in the fleet_vehicles / fleet_drivers
// association tables.
type Fleet struct {
	ID        uuid.UUID  `json:"id"`
	Name      string     `json:"name"`
	CompanyID *uuid.UUID `json:"company_id,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}
