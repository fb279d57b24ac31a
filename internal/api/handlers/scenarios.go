package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/fedplan/tsp-simulator/internal/domain"
	"github.com/fedplan/tsp-simulator/internal/store"
)

// ScenarioHandler handles HTTP requests for saved scenarios.
type ScenarioHandler struct {
	scenarios *store.ScenarioRepository
}

// NewScenarioHandler creates a ScenarioHandler with its repository.
func NewScenarioHandler(scenarios *store.ScenarioRepository) *ScenarioHandler {
	return &ScenarioHandler{scenarios: scenarios}
}

// Create handles POST requests that save a scenario.
//
// Endpoint: POST /api/scenarios
// Response: 201 Created with {"id": "..."}
func (h *ScenarioHandler) Create(w http.ResponseWriter, r *http.Request) {
	var scenario domain.Scenario
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := scenario.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid scenario", err.Error())
		return
	}

	id, err := h.scenarios.Insert(r.Context(), &scenario)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to save scenario", err.Error())
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// List handles GET requests for a profile's scenarios.
//
// Endpoint: GET /api/scenarios?profile_id=...
// Response: 200 OK with an array of Scenario
func (h *ScenarioHandler) List(w http.ResponseWriter, r *http.Request) {
	profileID := r.URL.Query().Get("profile_id")
	if profileID == "" {
		respondError(w, http.StatusBadRequest, "profile_id is required", "")
		return
	}

	scenarios, err := h.scenarios.ListByProfile(r.Context(), profileID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to list scenarios", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, scenarios)
}

// Delete handles DELETE requests for a saved scenario.
//
// Endpoint: DELETE /api/scenarios/{scenarioID}
// Response: 204 No Content, 404 if the scenario does not exist
func (h *ScenarioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "scenarioID")

	err := h.scenarios.Delete(r.Context(), id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "Scenario not found", "")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to delete scenario", err.Error())
		return
	}

	respondJSON(w, http.StatusNoContent, nil)
}
