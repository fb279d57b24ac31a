package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fedplan/tsp-simulator/internal/calculation"
	"github.com/fedplan/tsp-simulator/internal/domain"
	"github.com/fedplan/tsp-simulator/internal/store"
)

// ProjectionHandler handles HTTP requests for projections and scenario
// comparisons. It validates inputs and fetches stored scenarios; the
// engine itself assumes pre-validated input.
type ProjectionHandler struct {
	engine    *calculation.Engine
	scenarios *store.ScenarioRepository
}

// NewProjectionHandler creates a ProjectionHandler with its dependencies.
func NewProjectionHandler(engine *calculation.Engine, scenarios *store.ScenarioRepository) *ProjectionHandler {
	return &ProjectionHandler{
		engine:    engine,
		scenarios: scenarios,
	}
}

// Project handles POST requests that project an inline scenario.
//
// Endpoint: POST /api/projection?years=N
// Body: a Scenario
// Response: 200 OK with a ProjectionResult
func (h *ProjectionHandler) Project(w http.ResponseWriter, r *http.Request) {
	var scenario domain.Scenario
	if err := json.NewDecoder(r.Body).Decode(&scenario); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if err := scenario.Validate(); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid scenario", err.Error())
		return
	}

	years, ok := parseYears(w, r)
	if !ok {
		return
	}

	result, err := h.engine.Project(&scenario, years)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Projection failed", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// ProjectStored handles GET requests that project a saved scenario.
//
// Endpoint: GET /api/projection/{scenarioID}?years=N
// Response: 200 OK with a ProjectionResult, 404 if the scenario does not exist
func (h *ProjectionHandler) ProjectStored(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "scenarioID")

	scenario, err := h.scenarios.Get(r.Context(), id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to load scenario", err.Error())
		return
	}
	if scenario == nil {
		respondError(w, http.StatusNotFound, "Scenario not found", "")
		return
	}

	years, ok := parseYears(w, r)
	if !ok {
		return
	}

	result, err := h.engine.Project(scenario, years)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Projection failed", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// compareRequest is the body of a comparison request.
type compareRequest struct {
	ScenarioIDs []string `json:"scenario_ids"`
	Years       int      `json:"years,omitempty"`
}

// Compare handles POST requests that compare saved scenarios.
// Scenario IDs that do not resolve are omitted from the result rather
// than failing the request.
//
// Endpoint: POST /api/projection/compare
// Body: {"scenario_ids": [...], "years": N}
// Response: 200 OK with a ScenarioComparison
func (h *ProjectionHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req compareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	if len(req.ScenarioIDs) == 0 {
		respondError(w, http.StatusBadRequest, "No scenario IDs provided", "")
		return
	}

	scenarios := make([]*domain.Scenario, 0, len(req.ScenarioIDs))
	for _, id := range req.ScenarioIDs {
		scenario, err := h.scenarios.Get(r.Context(), id)
		if err != nil {
			respondError(w, http.StatusInternalServerError, "Failed to load scenario", err.Error())
			return
		}
		// Unresolved scenarios are skipped, not errors.
		scenarios = append(scenarios, scenario)
	}

	comparison, err := h.engine.Compare(r.Context(), scenarios, req.Years)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Comparison failed", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, comparison)
}

// parseYears reads the optional years query parameter. Writes a 400 and
// returns false when the value is present but not a positive integer.
func parseYears(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("years")
	if raw == "" {
		return 0, true
	}
	years, err := strconv.Atoi(raw)
	if err != nil || years <= 0 {
		respondError(w, http.StatusBadRequest, "Invalid years parameter", raw)
		return 0, false
	}
	return years, true
}
