package handlers

import (
	"database/sql"
	"net/http"

	"github.com/fedplan/tsp-simulator/internal/store"
)

// SystemHandler handles HTTP requests for system endpoints.
type SystemHandler struct {
	db *sql.DB
}

// NewSystemHandler creates a SystemHandler over the given connection.
func NewSystemHandler(db *sql.DB) *SystemHandler {
	return &SystemHandler{db: db}
}

// HealthResponse is the body of the health endpoint.
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Error    string `json:"error,omitempty"`
}

// Health handles GET requests for service health.
//
// Endpoint: GET /api/system/health
// Response: 200 OK when healthy, 503 when the database is unreachable
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := store.HealthCheck(h.db); err != nil {
		respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
			Status:   "unhealthy",
			Database: "disconnected",
			Error:    err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, HealthResponse{
		Status:   "healthy",
		Database: "connected",
	})
}
