package handler

import (
	"encoding/json"
	"net/http"

	"flightlog-service/internal/domain/entity"
	"flightlog-service/internal/usecase"
	"flightlog-service/pkg/logger"
)

// SaveTripRequest is the POST /api/trips body.
type SaveTripRequest struct {
	Legs   []entity.TripLeg `json:"legs"`
	Return bool             `json:"return"`
}

// SaveTripResponse reports the reconciliation result per leg.
type SaveTripResponse struct {
	Saved int              `json:"saved"`
	Legs  []entity.TripLeg `json:"legs"`
	Error string           `json:"error,omitempty"`
}

// TripHandler serves trip reconciliation and saving.
type TripHandler struct {
	reconciler *usecase.TripReconciler
	logger     logger.Logger
}

// NewTripHandler creates a new trip handler
func NewTripHandler(reconciler *usecase.TripReconciler, log logger.Logger) *TripHandler {
	return &TripHandler{reconciler: reconciler, logger: log}
}

// SaveTrip handles POST /api/trips
func (h *TripHandler) SaveTrip(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		respondWithError(w, http.StatusMethodNotAllowed, "only POST is allowed")
		return
	}

	var req SaveTripRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	defer r.Body.Close()

	if len(req.Legs) == 0 {
		respondWithError(w, http.StatusBadRequest, "trip must contain at least one leg")
		return
	}

	legs, saved, err := h.reconciler.ReconcileAndSave(r.Context(), req.Legs, req.Return)
	if err != nil {
		h.logger.Error("Trip save failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "failed to save trip")
		return
	}

	if saved == 0 {
		respondWithJSON(w, http.StatusUnprocessableEntity, SaveTripResponse{
			Legs:  legs,
			Error: "one or more legs could not be resolved; nothing was saved",
		})
		return
	}

	respondWithJSON(w, http.StatusCreated, SaveTripResponse{Saved: saved, Legs: legs})
}
