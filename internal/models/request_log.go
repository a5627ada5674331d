package models

import (
	"time"

	"github.com/google/uuid"
)

// RequestLog is one inbound API call. Entries are append-only: the core
// never mutates or deletes them. APIKeyID is nil for requests rejected
// before authentication completed.
type RequestLog struct {
	ID             uuid.UUID  `json:"id"`
	APIKeyID       *uuid.UUID `json:"api_key_id,omitempty"`
	Method         string     `json:"method"`
	Endpoint       string     `json:"endpoint"`
	IPAddress      string     `json:"ip_address"`
	StatusCode     int        `json:"status_code"`
	ResponseTimeMs int        `json:"response_time_ms"`
	CreatedAt      time.Time  `json:"created_at"`
}
