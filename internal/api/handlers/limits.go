package handlers

import (
	"net/http"

	"github.com/fedplan/tsp-simulator/internal/calculation"
)

// LimitsHandler serves the display-only configuration constants: the
// annual contribution ceilings and the employer match curve. These are
// queryable without running a projection.
type LimitsHandler struct {
	match *calculation.MatchCalculator
}

// NewLimitsHandler creates a LimitsHandler over the given calculator.
func NewLimitsHandler(match *calculation.MatchCalculator) *LimitsHandler {
	return &LimitsHandler{match: match}
}

// LimitsResponse is the body of the limits endpoint.
type LimitsResponse struct {
	Limits     calculation.Limits            `json:"limits"`
	MatchCurve []calculation.MatchBreakpoint `json:"match_curve"`
}

// Limits handles GET requests for contribution limits and the match curve.
//
// Endpoint: GET /api/limits
// Response: 200 OK with LimitsResponse
func (h *LimitsHandler) Limits(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LimitsResponse{
		Limits:     h.match.Limits,
		MatchCurve: h.match.MatchCurve(),
	})
}
