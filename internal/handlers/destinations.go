package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rewardlabs/points-txcore/internal/models"
)

// DestinationManager exposes the actor's recent payout destinations.
type DestinationManager interface {
	Destinations(ctx context.Context, actorID uuid.UUID) []models.RecentDestination
	RemoveDestination(ctx context.Context, actorID uuid.UUID, id string)
}

// DestinationsResponse lists recent payout destinations
// swagger:model DestinationsResponse
type DestinationsResponse struct {
	Destinations []models.RecentDestination `json:"destinations"`
}

// NewDestinationsHandler lists the most-recently-used payout destinations.
// @Summary Recent destinations
// @Description Returns up to 10 most-recently-used withdrawal destinations
// @Tags destinations
// @Produce json
// @Success 200 {object} handlers.DestinationsResponse
// @Failure 401 {object} handlers.ErrorResponse
// @Router /destinations [get]
// @Security BearerAuth
func NewDestinationsHandler(tokener Tokener, manager DestinationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorID(tokener, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}
		writeJSON(w, http.StatusOK,
			DestinationsResponse{Destinations: manager.Destinations(r.Context(), actor)})
	}
}

// NewRemoveDestinationHandler deletes one recent destination by id.
// @Summary Remove destination
// @Description Deletes a recent payout destination
// @Tags destinations
// @Produce json
// @Param id path string true "Destination id"
// @Success 204
// @Failure 401 {object} handlers.ErrorResponse
// @Router /destinations/{id} [delete]
// @Security BearerAuth
func NewRemoveDestinationHandler(tokener Tokener, manager DestinationManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, err := actorID(tokener, r)
		if err != nil {
			writeUnauthorized(w)
			return
		}
		manager.RemoveDestination(r.Context(), actor, chi.URLParam(r, "id"))
		w.WriteHeader(http.StatusNoContent)
	}
}
