package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

type APIKeyRepo struct {
	pool *pgxpool.Pool
}

func NewAPIKeyRepo(pool *pgxpool.Pool) *APIKeyRepo {
	return &APIKeyRepo{pool: pool}
}

func (r *APIKeyRepo) Create(ctx context.Context, k *models.APIKey) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO api_keys (id, name, secret, key_prefix, revoked)
		VALUES ($1, $2, $3, $4, $5)
	`, k.ID, k.Name, k.Secret, k.KeyPrefix, k.Revoked)
	return err
}

// FindBySecret returns the key whose secret equals the given token, or
// pgx.ErrNoRows when no key matches.
func (r *APIKeyRepo) FindBySecret(ctx context.Context, secret string) (*models.APIKey, error) {
	var k models.APIKey
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, secret, key_prefix, revoked, created_at, last_used_at
		FROM api_keys WHERE secret = $1
	`, secret).Scan(&k.ID, &k.Name, &k.Secret, &k.KeyPrefix, &k.Revoked, &k.CreatedAt, &k.LastUsedAt)
	if err != nil {
		return nil, err
	}
	return &k, nil
}

// TouchLastUsed sets last_used_at. Concurrent touches on the same key
// race harmlessly: last write wins.
func (r *APIKeyRepo) TouchLastUsed(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.pool.Exec(ctx, `UPDATE api_keys SET last_used_at = $2 WHERE id = $1`, id, at)
	return err
}

// Revoke marks the key revoked. Returns pgx.ErrNoRows when the id does
// not match any key. Revoking an already-revoked key is a no-op success.
func (r *APIKeyRepo) Revoke(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `UPDATE api_keys SET revoked = TRUE WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

// List returns all keys, newest first. Secrets are included in the
// structs but carry a json:"-" tag; handlers never echo them.
func (r *APIKeyRepo) List(ctx context.Context) ([]*models.APIKey, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, secret, key_prefix, revoked, created_at, last_used_at
		FROM api_keys ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*models.APIKey
	for rows.Next() {
		var k models.APIKey
		if err := rows.Scan(&k.ID, &k.Name, &k.Secret, &k.KeyPrefix, &k.Revoked, &k.CreatedAt, &k.LastUsedAt); err != nil {
			return nil, err
		}
		list = append(list, &k)
	}
	if list == nil {
		list = []*models.APIKey{}
	}
	return list, rows.Err()
}
