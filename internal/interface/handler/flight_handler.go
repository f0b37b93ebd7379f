package handler

import (
	"net/http"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/domain/repository"
	"flightlog-service/internal/usecase"
	"flightlog-service/pkg/logger"
)

// FlightHandler serves the persisted logbook and its aggregates.
type FlightHandler struct {
	flightRepo repository.FlightRepository
	stats      *usecase.StatsUsecase
	logger     logger.Logger
}

// NewFlightHandler creates a new flight handler
func NewFlightHandler(flightRepo repository.FlightRepository, stats *usecase.StatsUsecase, log logger.Logger) *FlightHandler {
	return &FlightHandler{flightRepo: flightRepo, stats: stats, logger: log}
}

// ListFlights handles GET /api/flights
func (h *FlightHandler) ListFlights(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "only GET is allowed")
		return
	}

	flights, err := h.flightRepo.FindAll(r.Context())
	if err != nil {
		h.logger.Error("Failed to list flights", "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to list flights")
		return
	}
	if flights == nil {
		flights = []entity.Flight{}
	}

	respondWithJSON(w, http.StatusOK, flights)
}

// GetStats handles GET /api/stats
func (h *FlightHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		respondWithError(w, http.StatusMethodNotAllowed, "only GET is allowed")
		return
	}

	stats, err := h.stats.Compute(r.Context())
	if err != nil {
		h.logger.Error("Failed to compute stats", "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	respondWithJSON(w, http.StatusOK, stats)
}
