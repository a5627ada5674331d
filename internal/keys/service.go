// Package keys owns the API key lifecycle: issuance, revocation and
// bearer-token validation. It is the single auth gate shared by every
// protected endpoint.
package keys

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

var (
	// ErrNameRequired is returned by Issue when the key name is empty.
	ErrNameRequired = errors.New("key name is required")
	// ErrMissingToken is returned when no bearer token was presented.
	ErrMissingToken = errors.New("missing bearer token")
	// ErrInvalidToken is returned when the token matches no issued key.
	// Store failures during lookup also surface as ErrInvalidToken: the
	// gate fails closed, never open.
	ErrInvalidToken = errors.New("invalid api key")
	// ErrKeyRevoked is returned when the matched key has been revoked.
	ErrKeyRevoked = errors.New("api key revoked")
	// ErrKeyNotFound is returned by Revoke for an unknown key id.
	ErrKeyNotFound = errors.New("api key not found")
)

// Store is the persistence contract the service needs. *repository.
// APIKeyRepo satisfies it; tests substitute an in-memory fake.
type Store interface {
	Create(ctx context.Context, k *models.APIKey) error
	FindBySecret(ctx context.Context, secret string) (*models.APIKey, error)
	TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error
	Revoke(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]*models.APIKey, error)
}

type Service struct {
	store Store
	log   *slog.Logger
	now   func() time.Time
}

func NewService(store Store, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{store: store, log: log, now: time.Now}
}

// IssuedKey carries the one chance to read the full secret. Everything
// after issuance sees only the stored key with its display prefix.
type IssuedKey struct {
	Key    *models.APIKey
	Secret string
}

// Issue generates a new secret (constant namespace prefix plus 128 bits
// from crypto/rand), inserts the key with revoked=false and returns the
// full secret exactly once. A uniqueness collision on the secret (in
// practice unreachable) surfaces as a storage error; the caller retries
// with a fresh Issue call.
func (s *Service) Issue(ctx context.Context, name string) (*IssuedKey, error) {
	if name == "" {
		return nil, ErrNameRequired
	}
	raw := make([]byte, 16)
	if _, err := rand.Read(raw); err != nil {
		return nil, err
	}
	secret := models.SecretPrefix + hex.EncodeToString(raw)

	k := &models.APIKey{
		ID:        uuid.New(),
		Name:      name,
		Secret:    secret,
		KeyPrefix: secret[:12],
		Revoked:   false,
	}
	if err := s.store.Create(ctx, k); err != nil {
		return nil, err
	}
	return &IssuedKey{Key: k, Secret: secret}, nil
}

// Authenticate validates a bearer token against the key store. On
// success it stamps last_used_at; that write is best-effort and a
// failure there never fails the authentication. Lookup errors are
// folded into ErrInvalidToken so a store outage can never let a
// request through.
func (s *Service) Authenticate(ctx context.Context, token string) (*models.APIKey, error) {
	if token == "" {
		return nil, ErrMissingToken
	}
	k, err := s.store.FindBySecret(ctx, token)
	if err != nil {
		if !errors.Is(err, pgx.ErrNoRows) {
			s.log.Error("api key lookup failed", "error", err)
		}
		return nil, ErrInvalidToken
	}
	if k.Revoked {
		return nil, ErrKeyRevoked
	}
	now := s.now()
	if err := s.store.TouchLastUsed(ctx, k.ID, now); err != nil {
		s.log.Warn("last_used_at update failed", "key_id", k.ID, "error", err)
	} else {
		k.LastUsedAt = &now
	}
	return k, nil
}

// Revoke marks the key permanently unusable. Idempotent: revoking an
// already-revoked key is a no-op success.
func (s *Service) Revoke(ctx context.Context, id uuid.UUID) error {
	if err := s.store.Revoke(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrKeyNotFound
		}
		return err
	}
	return nil
}

// List returns all issued keys, revoked ones included.
func (s *Service) List(ctx context.Context) ([]*models.APIKey, error) {
	return s.store.List(ctx)
}
