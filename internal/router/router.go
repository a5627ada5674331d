package router

import (
	"net/http"

	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/auth"
	"github.com/CharlesHenrynoah/drive-hub-management-sub001/internal/dashboard"
)

// New returns the dashboard API under /api/v1: admin sessions plus
// API key and request-log administration.
func New(authHandler *auth.Handler, dashHandler *dashboard.Handler) http.Handler {
	mux := http.NewServeMux()
	base := "/api/v1"
	mux.HandleFunc("POST "+base+"/auth/register", authHandler.Register)
	mux.HandleFunc("POST "+base+"/auth/login", authHandler.Login)

	mux.HandleFunc("GET "+base+"/api-keys", dashHandler.ListAPIKeys)
	mux.HandleFunc("POST "+base+"/api-keys", dashHandler.CreateAPIKey)
	mux.HandleFunc("DELETE "+base+"/api-keys/{id}", dashHandler.RevokeAPIKey)
	mux.HandleFunc("GET "+base+"/request-logs", dashHandler.ListRequestLogs)

	return mux
}
