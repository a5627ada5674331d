package models

import (
	"time"

	"github.com/google/uuid"
)

// SecretPrefix is the constant namespace tag prepended to every issued
// API key secret.
const SecretPrefix = "hermes_"

// APIKey identifies a calling integration. The full secret is returned
// exactly once at issuance; listings expose only KeyPrefix. Revocation
// is one-way: once Revoked is true the key never becomes usable again,
// and rows are never deleted.
type APIKey struct {
	ID         uuid.UUID  `json:"id"`
	Name       string     `json:"name"`
	Secret     string     `json:"-"`
	KeyPrefix  string     `json:"key_prefix"`
	Revoked    bool       `json:"revoked"`
	CreatedAt  time.Time  `json:"created_at"`
	LastUsedAt *time.Time `json:"last_used_at,omitempty"`
}
