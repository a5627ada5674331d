package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository struct {
	pool *pgxpool.Pool
}

func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// Create inserts a new admin account and returns it.
func (r *Repository) Create(ctx context.Context, email, passwordHash, name string) (*Account, error) {
	var a Account
	row := r.pool.QueryRow(ctx, `
		INSERT INTO admin_accounts (email, password_hash, name)
		VALUES ($1, $2, $3)
		RETURNING id, email, name
	`, email, passwordHash, name)
	if err := row.Scan(&a.ID, &a.Email, &a.Name); err != nil {
		return nil, err
	}
	return &a, nil
}

// GetByEmail returns the account and password hash for login, or nil
// when the email is unknown.
func (r *Repository) GetByEmail(ctx context.Context, email string) (*Account, string, error) {
	var a Account
	var passwordHash string
	row := r.pool.QueryRow(ctx, `
		SELECT id, email, name, password_hash FROM admin_accounts WHERE email = $1
	`, email)
	if err := row.Scan(&a.ID, &a.Email, &a.Name, &passwordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", nil
		}
		return nil, "", err
	}
	return &a, passwordHash, nil
}

// Exists reports whether the account id is valid (used by token checks).
func (r *Repository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var found bool
	err := r.pool.QueryRow(ctx, `SELECT TRUE FROM admin_accounts WHERE id = $1`, id).Scan(&found)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return found, err
}
