// Package dashboard serves the JWT-authenticated administration
// surface: API key issuance/revocation and request-log browsing.
package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/auth"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/keys"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/models"
)

// LogReader lists recent request-log entries.
type LogReader interface {
	ListRecent(ctx context.Context, limit int) ([]*models.RequestLog, error)
}

type Handler struct {
	authSvc auth.Service
	keys    *keys.Service
	logs    LogReader
	log     *slog.Logger
}

func NewHandler(authSvc auth.Service, keySvc *keys.Service, logs LogReader, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{authSvc: authSvc, keys: keySvc, logs: logs, log: log}
}

func (h *Handler) accountIDFromRequest(r *http.Request) (uuid.UUID, error) {
	authz := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return uuid.Nil, fmt.Errorf("missing authorization")
	}
	token := strings.TrimSpace(authz[len(prefix):])
	if token == "" {
		return uuid.Nil, fmt.Errorf("empty token")
	}
	return h.authSvc.ValidateToken(r.Context(), token)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// GET /api/v1/api-keys
func (h *Handler) ListAPIKeys(w http.ResponseWriter, r *http.Request) {
	if _, err := h.accountIDFromRequest(r); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	list, err := h.keys.List(r.Context())
	if err != nil {
		h.log.Error("list api keys failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, list)
}

// POST /api/v1/api-keys
//
// The response is the only place the full secret ever appears; the
// stored model serializes it as "-" so listings cannot leak it.
func (h *Handler) CreateAPIKey(w http.ResponseWriter, r *http.Request) {
	if _, err := h.accountIDFromRequest(r); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	var body struct {
		Name string `json:"name"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	issued, err := h.keys.Issue(r.Context(), body.Name)
	if err != nil {
		if errors.Is(err, keys.ErrNameRequired) {
			writeError(w, http.StatusBadRequest, "name is required")
			return
		}
		h.log.Error("create api key failed", "error", err)
		writeError(w, http.StatusInternalServerError, "create failed")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":         issued.Key.ID,
		"name":       issued.Key.Name,
		"key_prefix": issued.Key.KeyPrefix,
		"revoked":    issued.Key.Revoked,
		"secret":     issued.Secret,
	})
}

// DELETE /api/v1/api-keys/{id}
//
// Revocation, not deletion: the row stays, the key becomes permanently
// unusable. Revoking twice succeeds both times.
func (h *Handler) RevokeAPIKey(w http.ResponseWriter, r *http.Request) {
	if _, err := h.accountIDFromRequest(r); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	keyID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid key ID")
		return
	}
	if err := h.keys.Revoke(r.Context(), keyID); err != nil {
		if errors.Is(err, keys.ErrKeyNotFound) {
			writeError(w, http.StatusNotFound, "api key not found")
			return
		}
		h.log.Error("revoke api key failed", "key_id", keyID, "error", err)
		writeError(w, http.StatusInternalServerError, "revoke failed")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/request-logs?limit=
func (h *Handler) ListRequestLogs(w http.ResponseWriter, r *http.Request) {
	if _, err := h.accountIDFromRequest(r); err != nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}
	limit := 100
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > 1000 {
			writeError(w, http.StatusBadRequest, "limit must be between 1 and 1000")
			return
		}
		limit = n
	}
	entries, err := h.logs.ListRecent(r.Context(), limit)
	if err != nil {
		h.log.Error("list request logs failed", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, entries)
}
