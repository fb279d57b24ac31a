package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/fedplan/tsp-simulator/internal/calculation"
	"github.com/fedplan/tsp-simulator/internal/domain"
)

// FundHandler handles HTTP requests for fund return statistics.
type FundHandler struct {
	returns *calculation.ReturnModel
}

// NewFundHandler creates a FundHandler over the given return model.
func NewFundHandler(returns *calculation.ReturnModel) *FundHandler {
	return &FundHandler{returns: returns}
}

// Return handles GET requests for a fund's historical return summary.
// A fund with fewer than two price points in the window yields a
// zero-return summary, not an error.
//
// Endpoint: GET /api/funds/{fund}/return?lookback_years=10
// Response: 200 OK with a FundReturnSummary
func (h *FundHandler) Return(w http.ResponseWriter, r *http.Request) {
	fund := domain.Fund(chi.URLParam(r, "fund"))

	lookback := calculation.DefaultLookbackYears
	if raw := r.URL.Query().Get("lookback_years"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			respondError(w, http.StatusBadRequest, "Invalid lookback_years parameter", raw)
			return
		}
		lookback = parsed
	}

	summary, err := h.returns.HistoricalReturn(fund, lookback)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "Failed to compute fund return", err.Error())
		return
	}

	respondJSON(w, http.StatusOK, summary)
}
