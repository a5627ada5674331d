package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

type RequestLogRepo struct {
	pool *pgxpool.Pool
}

func NewRequestLogRepo(pool *pgxpool.Pool) *RequestLogRepo {
	return &RequestLogRepo{pool: pool}
}

// Append inserts one log entry. The table is append-only; nothing in
// the service ever updates or deletes rows.
func (r *RequestLogRepo) Append(ctx context.Context, e *models.RequestLog) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO api_request_logs (id, api_key_id, method, endpoint, ip_address, status_code, response_time_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`, e.ID, e.APIKeyID, e.Method, e.Endpoint, e.IPAddress, e.StatusCode, e.ResponseTimeMs)
	return err
}

// ListRecent returns the newest entries, capped at limit.
func (r *RequestLogRepo) ListRecent(ctx context.Context, limit int) ([]*models.RequestLog, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, api_key_id, method, endpoint, ip_address, status_code, response_time_ms, created_at
		FROM api_request_logs ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var list []*models.RequestLog
	for rows.Next() {
		var e models.RequestLog
		if err := rows.Scan(&e.ID, &e.APIKeyID, &e.Method, &e.Endpoint, &e.IPAddress, &e.StatusCode, &e.ResponseTimeMs, &e.CreatedAt); err != nil {
			return nil, err
		}
		list = append(list, &e)
	}
	if list == nil {
		list = []*models.RequestLog{}
	}
	return list, rows.Err()
}
