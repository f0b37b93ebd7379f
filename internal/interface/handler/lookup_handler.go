package handler

import (
	"errors"
	"net/http"
	"strconv"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/usecase"
	"flightlog-service/pkg/logger"
)

// LookupHandler serves the flight-status lookup endpoint.
type LookupHandler struct {
	lookup *usecase.LookupUsecase
	logger logger.Logger
}

// NewLookupHandler creates a new lookup handler
func NewLookupHandler(lookup *usecase.LookupUsecase, log logger.Logger) *LookupHandler {
	return &LookupHandler{lookup: lookup, logger: log}
}

// FlightLookup handles GET /api/flight_lookup?ident=FA600
func (h *LookupHandler) FlightLookup(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "only GET is allowed")
		return
	}

	leg, err := h.lookup.Lookup(r.Context(), r.URL.Query().Get("ident"))
	if err != nil {
		h.respondLookupError(w, err)
		return
	}

	respondWithJSON(w, http.StatusOK, leg)
}

// respondLookupError maps the error taxonomy onto HTTP statuses. Provider
// errors propagate the upstream status verbatim.
func (h *LookupHandler) respondLookupError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrBadInput):
		respondWithError(w, http.StatusBadRequest, "no ident supplied")
	case errors.Is(err, entity.ErrMissingCredential):
		respondWithError(w, http.StatusInternalServerError, "server config error")
	case errors.Is(err, entity.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "flight not found")
	default:
		if pe, ok := entity.AsProviderError(err); ok {
			respondWithError(w, pe.StatusCode, "provider error")
			return
		}
		h.logger.Error("Flight lookup crashed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// RecentLookups handles GET /api/lookups
func (h *LookupHandler) RecentLookups(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "only GET is allowed")
		return
	}

	limit := 20
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	records, err := h.lookup.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to read lookup history", "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to read lookup history")
		return
	}
	if records == nil {
		records = []entity.LookupRecord{}
	}

	respondWithJSON(w, http.StatusOK, records)
}
