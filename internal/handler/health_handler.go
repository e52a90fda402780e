package handler

import (
	"net/http"
	"time"

	"club-elections/pkg/database"
	"club-elections/pkg/logger"
)

// HealthHandler handles liveness checks.
type HealthHandler struct {
	db  *database.PostgresDB
	log *logger.Logger
}

func NewHealthHandler(db *database.PostgresDB, log *logger.Logger) *HealthHandler {
	return &HealthHandler{
		db:  db,
		log: log,
	}
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Service   string    `json:"service"`
	Database  string    `json:"database"`
}

// Check handles GET /health
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Service:   "club-elections",
		Database:  "up",
	}

	if err := h.db.Health(r.Context()); err != nil {
		h.log.WithError(err).Warn("database health check failed")
		response.Status = "degraded"
		response.Database = "down"
	}

	respondJSON(w, http.StatusOK, response)
}
